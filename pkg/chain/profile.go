package chain

import (
	"fmt"

	"github.com/provenly/chainledger/pkg/canonical"
	"github.com/provenly/chainledger/pkg/recordid"
)

// FieldsFunc returns the ordered field tuple hashed for a record. The tuple
// must include PriorHash so that every digest folds in the chain linkage.
// The layout is part of the domain's wire contract and must never change
// once records exist under it.
type FieldsFunc func(r Record) []canonical.Field

// Profile parameterizes the chain engine for one governance domain.
// Each domain supplies its record id prefix, known record types, and the
// exact field-tuple layout, preserving its historical byte-for-byte hash
// layout over the shared engine.
type Profile struct {
	// Name identifies the domain, e.g. "evidence". Used in logs and metrics.
	Name string

	// Prefix is the required record id prefix, e.g. "EVIDENCE".
	Prefix string

	// RecordTypes is the set of record types the domain accepts. A record
	// whose type is not in the set is structurally invalid.
	RecordTypes []string

	// Fields overrides the hashed field layout. Nil means DefaultFields.
	Fields FieldsFunc
}

// DefaultFields is the canonical field order shared by all domains that do
// not carry a custom layout:
//
//	record_id, record_type, subject_id, timestamp, prior_hash, [payload]
//
// The payload field is present only when the record carries payload bytes.
func DefaultFields(r Record) []canonical.Field {
	fields := []canonical.Field{
		canonical.String(r.RecordID),
		canonical.String(r.RecordType),
		canonical.String(r.SubjectID),
		canonical.String(r.Timestamp),
		canonical.String(r.PriorHash),
	}
	if len(r.Payload) > 0 {
		fields = append(fields, canonical.Bytes(r.Payload))
	}
	return fields
}

// hash computes the record's self hash under this profile's layout.
func (p Profile) hash(r Record) string {
	fields := p.Fields
	if fields == nil {
		fields = DefaultFields
	}
	return canonical.Sum(fields(r)...)
}

// knownType reports whether t is one of the profile's record types.
// An empty RecordTypes set accepts any non-empty type.
func (p Profile) knownType(t string) bool {
	if t == "" {
		return false
	}
	if len(p.RecordTypes) == 0 {
		return true
	}
	for _, rt := range p.RecordTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// checkDraft validates the structural fields of a draft before it is
// hashed into the chain.
func (p Profile) checkDraft(d Draft) error {
	if !recordid.Valid(d.RecordID) {
		return fmt.Errorf("%w: record id %q does not match <PREFIX>-<hex≥8>", ErrStructural, d.RecordID)
	}
	if p.Prefix != "" && !recordid.HasPrefix(d.RecordID, p.Prefix) {
		return fmt.Errorf("%w: record id %q does not carry prefix %q", ErrStructural, d.RecordID, p.Prefix)
	}
	if !p.knownType(d.RecordType) {
		return fmt.Errorf("%w: unknown record type %q for domain %q", ErrStructural, d.RecordType, p.Name)
	}
	if d.SubjectID == "" {
		return fmt.Errorf("%w: empty subject id", ErrStructural)
	}
	if d.Timestamp == "" {
		return fmt.Errorf("%w: empty timestamp", ErrStructural)
	}
	return nil
}

// checkRecord validates the structural fields of an already-chained record.
// Linkage and digest correctness are the validator's business, not ours.
func (p Profile) checkRecord(r Record) error {
	if err := p.checkDraft(Draft{
		RecordID:   r.RecordID,
		RecordType: r.RecordType,
		SubjectID:  r.SubjectID,
		Timestamp:  r.Timestamp,
	}); err != nil {
		return err
	}
	if r.SelfHash == "" {
		return fmt.Errorf("%w: empty self hash", ErrStructural)
	}
	// PriorHash is deliberately not format-checked here: a malformed prior
	// is a linkage problem, caught against the reconstructed chain.
	return nil
}
