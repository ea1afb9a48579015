package chain

import "bytes"

// Snapshot is the JSON shape of a ledger for audit tooling. It is a
// diagnostic export, not a storage format: nothing in it is trusted on
// the way back in — FromSnapshot rebuilds the ledger exactly as declared
// and Inspect judges it.
type Snapshot struct {
	LedgerID string   `json:"ledger_id"`
	HeadHash string   `json:"head_hash"`
	Length   int      `json:"length"`
	Records  []Record `json:"records"`
}

// Snapshot exports the ledger's declared state. Record payloads are copied
// so the snapshot cannot reach the ledger's own state.
func (l Ledger) Snapshot() Snapshot {
	recs := l.Records()
	for i := range recs {
		recs[i].Payload = bytes.Clone(recs[i].Payload)
	}
	return Snapshot{
		LedgerID: l.id,
		HeadHash: l.head,
		Length:   l.length,
		Records:  recs,
	}
}

// FromSnapshot rebuilds a ledger from an untrusted snapshot under the given
// domain profile. Declared head hash and length are carried verbatim, with
// no recomputation: run Inspect on the result before trusting it.
func FromSnapshot(profile Profile, s Snapshot) Ledger {
	var tail *node
	for _, rec := range s.Records {
		rec.Payload = bytes.Clone(rec.Payload)
		tail = &node{rec: rec, prev: tail}
	}
	return Ledger{
		id:      s.LedgerID,
		profile: profile,
		tail:    tail,
		length:  s.Length,
		head:    s.HeadHash,
	}
}
