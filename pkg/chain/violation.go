package chain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the violation taxonomy. Validate collapses all of
// them into one boolean — there is no partial trust — but Inspect retains
// the specific kind for audit and observability.
var (
	// ErrStructural marks malformed record fields.
	ErrStructural = errors.New("chain: structural violation")
	// ErrLinkage marks a prior-hash mismatch (truncation, reorder, insertion).
	ErrLinkage = errors.New("chain: linkage violation")
	// ErrTamper marks a recomputed-digest mismatch.
	ErrTamper = errors.New("chain: tamper violation")
	// ErrHeadMismatch marks a declared head that disagrees with the true
	// last self hash.
	ErrHeadMismatch = errors.New("chain: head mismatch")
)

// Kind classifies a chain violation.
type Kind int

const (
	KindStructural Kind = iota + 1
	KindLinkage
	KindTamper
	KindHeadMismatch
)

// String returns the kind's stable label, used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindLinkage:
		return "linkage"
	case KindTamper:
		return "tamper"
	case KindHeadMismatch:
		return "head_mismatch"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// sentinel maps a kind to its sentinel error.
func (k Kind) sentinel() error {
	switch k {
	case KindStructural:
		return ErrStructural
	case KindLinkage:
		return ErrLinkage
	case KindTamper:
		return ErrTamper
	case KindHeadMismatch:
		return ErrHeadMismatch
	default:
		return nil
	}
}

// Violation reports the first integrity violation found in a ledger.
// Index is the zero-based record index the violation was detected at,
// or -1 for ledger-level violations (length or head mismatch on the
// ledger envelope itself).
type Violation struct {
	Kind   Kind
	Index  int
	Detail string
}

// Error implements error.
func (v *Violation) Error() string {
	if v.Index < 0 {
		return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
	}
	return fmt.Sprintf("%s at record %d: %s", v.Kind, v.Index, v.Detail)
}

// Unwrap maps the violation onto its taxonomy sentinel so callers can use
// errors.Is(v, chain.ErrTamper) and friends.
func (v *Violation) Unwrap() error {
	return v.Kind.sentinel()
}
