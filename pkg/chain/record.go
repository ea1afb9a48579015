package chain

import (
	"bytes"

	"github.com/provenly/chainledger/pkg/canonical"
)

// Record is a single hash-linked entry in a ledger.
//
// A Record is owned exclusively by its containing Ledger and is never
// mutated after creation. SelfHash is the canonical digest of the record's
// fields in the ledger profile's documented order; PriorHash is the SelfHash
// of the preceding record, empty only for the first record ever appended.
type Record struct {
	RecordID   string `json:"record_id"`
	RecordType string `json:"record_type"`
	SubjectID  string `json:"subject_id"`
	Timestamp  string `json:"timestamp"` // ISO-8601
	Payload    []byte `json:"payload,omitempty"`
	PriorHash  string `json:"prior_hash"`
	SelfHash   string `json:"self_hash"`
}

// Draft holds the caller-supplied fields of a record about to be appended.
// Domain payload validity is the producer's responsibility; Append only
// checks structure and computes the chain linkage.
type Draft struct {
	RecordID   string
	RecordType string
	SubjectID  string
	Timestamp  string // ISO-8601
	Payload    []byte // pre-serialized domain payload, optional
}

// ContentHash fingerprints the draft's content independently of its
// position in any chain and of the minted record id: a resubmission of the
// same event content produces the same hash even if it arrives under a new
// id at a new chain position. This is the hash replay guards track.
func (d Draft) ContentHash() string {
	return canonical.Sum(
		canonical.String(d.RecordType),
		canonical.String(d.SubjectID),
		canonical.String(d.Timestamp),
		canonical.Bytes(d.Payload),
	)
}

// clonePayload copies the draft payload so the appended record cannot be
// mutated through the caller's slice.
func (d Draft) clonePayload() []byte {
	if len(d.Payload) == 0 {
		return nil
	}
	return bytes.Clone(d.Payload)
}
