package chain

import "fmt"

// node is one cell of the persistent record list. Ledgers produced by
// successive appends share their unchanged prefix through prev pointers,
// so Append is O(1) beyond the hash cost.
type node struct {
	rec  Record
	prev *node
}

// Ledger is an immutable, ordered collection of hash-linked records plus
// the cached head hash and declared length.
//
// The zero Ledger is not usable; construct one with New or FromSnapshot.
// All methods take value receivers and never mutate the ledger.
type Ledger struct {
	id      string
	profile Profile
	tail    *node
	length  int
	head    string
}

// New returns an empty ledger for the given domain profile.
func New(profile Profile, ledgerID string) Ledger {
	return Ledger{id: ledgerID, profile: profile}
}

// ID returns the ledger identifier.
func (l Ledger) ID() string { return l.id }

// Profile returns the domain profile the ledger was built under.
func (l Ledger) Profile() Profile { return l.profile }

// Length returns the declared record count. For ledgers built through
// Append it always equals the number of records; for ledgers rebuilt from
// an untrusted snapshot the two may disagree, which Inspect reports.
func (l Ledger) Length() int { return l.length }

// Head returns the self hash of the most recently appended record.
// ok is false for an empty ledger; the hash is never "" when ok is true.
func (l Ledger) Head() (hash string, ok bool) {
	return l.head, l.head != ""
}

// HeadHash returns the head hash with the empty-string sentinel for an
// empty ledger, matching the wire shape. Prefer Head where the distinction
// between "empty" and "has a head" matters.
func (l Ledger) HeadHash() string { return l.head }

// Records materializes the ordered record sequence. The returned slice is
// freshly allocated; callers may not reach the ledger's own state through it.
func (l Ledger) Records() []Record {
	n := 0
	for c := l.tail; c != nil; c = c.prev {
		n++
	}
	recs := make([]Record, n)
	for c := l.tail; c != nil; c = c.prev {
		n--
		recs[n] = c.rec
	}
	return recs
}

// Last returns the most recent record. ok is false for an empty ledger.
func (l Ledger) Last() (Record, bool) {
	if l.tail == nil {
		return Record{}, false
	}
	return l.tail.rec, true
}

// Equal reports value equality between two ledgers. Because every self hash
// folds in the entire prior history, equal id, length, and head hash imply
// equal record sequences.
func (l Ledger) Equal(o Ledger) bool {
	return l.id == o.id && l.length == o.length && l.head == o.head
}

// Append produces a brand-new ledger extended with one record chained to
// the current head. The receiver is never mutated: calling Append twice
// with identical arguments yields two value-equal ledgers.
//
// The draft's structure is checked against the ledger profile; domain
// payload semantics are assumed already validated by the producer.
func (l Ledger) Append(d Draft) (Ledger, error) {
	if err := l.profile.checkDraft(d); err != nil {
		return Ledger{}, fmt.Errorf("append to %q: %w", l.id, err)
	}

	rec := Record{
		RecordID:   d.RecordID,
		RecordType: d.RecordType,
		SubjectID:  d.SubjectID,
		Timestamp:  d.Timestamp,
		Payload:    d.clonePayload(),
		PriorHash:  l.head,
	}
	rec.SelfHash = l.profile.hash(rec)

	return Ledger{
		id:      l.id,
		profile: l.profile,
		tail:    &node{rec: rec, prev: l.tail},
		length:  l.length + 1,
		head:    rec.SelfHash,
	}, nil
}
