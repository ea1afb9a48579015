// Package replay detects resubmission of previously accepted content.
//
// A replay guard is a scope-bound set of content hashes that were already
// accepted. Membership means the candidate is a resubmission. The guard is
// deny-by-default: a candidate with no hash at all cannot be verified as
// novel, and absence of provenance must never be treated as a verified
// novel event.
//
// Two policies exist across the governance domains: strict (a replay is
// rejected outright) and permissive (a replay is accepted under an explicit
// allow flag, but still tagged as a duplicate rather than novel for
// downstream analytics).
package replay

import (
	"errors"
	"fmt"
)

// ErrReplay marks content whose hash was previously seen and whose policy
// disallows replays.
var ErrReplay = errors.New("replay: content hash previously seen")

// ErrUnverifiable marks content that cannot be checked at all: an empty
// candidate hash or a missing history set. Unverifiable is deliberately
// distinct from novel — a guard that cannot verify fails closed.
var ErrUnverifiable = errors.New("replay: content hash unverifiable")

// Verdict classifies a candidate content hash against a history set.
type Verdict int

const (
	// Novel means the hash is well-formed and was never seen in scope.
	Novel Verdict = iota + 1
	// Duplicate means the hash was previously accepted in scope.
	Duplicate
	// Unverifiable means no judgement is possible: the candidate hash is
	// empty or the history set is absent. Treated as a replay (fail-closed).
	Unverifiable
)

// String returns the verdict's stable label, used in logs and metric labels.
func (v Verdict) String() string {
	switch v {
	case Novel:
		return "novel"
	case Duplicate:
		return "duplicate"
	case Unverifiable:
		return "unverifiable"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Policy controls how duplicates are handled on acceptance.
type Policy struct {
	// AllowReplay accepts duplicates instead of rejecting them. The verdict
	// still reports Duplicate so downstream analytics never mistake a
	// resubmission for a novel event.
	AllowReplay bool
}

// Set is a scope-bound collection of previously accepted content hashes.
// A Set is not safe for concurrent mutation; it lives under the same
// single-writer discipline as the ledger it guards.
type Set struct {
	hashes map[string]struct{}
}

// NewSet returns an empty history set.
func NewSet() *Set {
	return &Set{hashes: make(map[string]struct{})}
}

// Check classifies the candidate hash without recording it.
// A nil set or an empty candidate is Unverifiable.
func (s *Set) Check(candidate string) Verdict {
	if s == nil || candidate == "" {
		return Unverifiable
	}
	if _, seen := s.hashes[candidate]; seen {
		return Duplicate
	}
	return Novel
}

// Accept classifies the candidate and, when the policy admits it, records
// the hash as seen. Novel content is always admitted. Duplicate content is
// admitted only under AllowReplay. Unverifiable content is never admitted.
func (s *Set) Accept(candidate string, p Policy) (Verdict, error) {
	v := s.Check(candidate)
	switch v {
	case Unverifiable:
		return v, fmt.Errorf("%w: empty candidate or missing history", ErrUnverifiable)
	case Duplicate:
		if !p.AllowReplay {
			return v, fmt.Errorf("%w: %s", ErrReplay, candidate)
		}
		return v, nil
	default:
		s.hashes[candidate] = struct{}{}
		return v, nil
	}
}

// Len returns the number of accepted hashes in scope.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.hashes)
}

// IsReplay is the boolean membership test. It fails closed: an empty
// candidate hash, or a history set that is absent entirely, counts as a
// replay, because it cannot be verified as a novel event.
func IsReplay(candidate string, seen *Set) bool {
	return seen.Check(candidate) != Novel
}
