package chain

import "fmt"

// Validate walks the entire chain and reports whether it is intact.
// All violation kinds collapse into one boolean: there is no partial trust.
func (l Ledger) Validate() bool {
	return l.Inspect() == nil
}

// Inspect recomputes the full chain and returns the first violation found,
// or nil if the ledger is intact. It is the audit hook behind Validate:
// the public contract is boolean, but the specific violation kind is
// retained here for observability and tests.
//
// The walk is O(n) in ledger length, one digest recomputation per record.
// Nil-ish inputs never panic: a malformed ledger deterministically yields
// a violation.
func (l Ledger) Inspect() *Violation {
	recs := l.Records()

	if len(recs) == 0 {
		// Empty chain: valid iff both the head sentinel and the declared
		// length agree that nothing was ever appended.
		if l.length != 0 {
			return &Violation{
				Kind:   KindStructural,
				Index:  -1,
				Detail: fmt.Sprintf("declared length %d with no records", l.length),
			}
		}
		if l.head != "" {
			return &Violation{
				Kind:   KindHeadMismatch,
				Index:  -1,
				Detail: fmt.Sprintf("declared head %q on an empty ledger", l.head),
			}
		}
		return nil
	}

	if l.length != len(recs) {
		return &Violation{
			Kind:   KindStructural,
			Index:  -1,
			Detail: fmt.Sprintf("declared length %d, found %d records", l.length, len(recs)),
		}
	}

	expectedPrior := ""
	for i, rec := range recs {
		if err := l.profile.checkRecord(rec); err != nil {
			return &Violation{Kind: KindStructural, Index: i, Detail: err.Error()}
		}

		// Detects truncation, reordering, and insertion: the record must
		// point at exactly the hash the walk has reconstructed so far.
		if rec.PriorHash != expectedPrior {
			return &Violation{
				Kind:   KindLinkage,
				Index:  i,
				Detail: fmt.Sprintf("prior hash %q, expected %q", rec.PriorHash, expectedPrior),
			}
		}

		// Detects tampering: because every digest folds in the prior hash,
		// a single-field edit anywhere breaks this check for the edited
		// record and every record after it.
		if computed := l.profile.hash(rec); rec.SelfHash != computed {
			return &Violation{
				Kind:   KindTamper,
				Index:  i,
				Detail: fmt.Sprintf("self hash %q, recomputed %q", rec.SelfHash, computed),
			}
		}

		expectedPrior = rec.SelfHash
	}

	// Detects a forged or stale head pointer on the ledger envelope.
	if l.head != expectedPrior {
		return &Violation{
			Kind:   KindHeadMismatch,
			Index:  -1,
			Detail: fmt.Sprintf("declared head %q, true last hash %q", l.head, expectedPrior),
		}
	}
	return nil
}
