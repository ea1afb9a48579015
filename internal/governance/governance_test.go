package governance_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/provenly/chainledger/internal/governance"
	"github.com/provenly/chainledger/pkg/chain"
	"github.com/provenly/chainledger/pkg/recordid"
)

var when = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDomainLedgers_appendAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		ledger chain.Ledger
		prefix string
		draft  func() (chain.Draft, error)
	}{
		{
			"evidence", governance.NewEvidenceLedger("CHAIN-1"), governance.EvidencePrefix,
			func() (chain.Draft, error) {
				return governance.EvidenceDraft(governance.EvidenceObservation, "S1", when, []byte(`{"seen":"x"}`))
			},
		},
		{
			"decision", governance.NewDecisionLedger("CHAIN-2"), governance.DecisionPrefix,
			func() (chain.Draft, error) {
				return governance.DecisionDraft(governance.DecisionApproved, "req-9", when, nil)
			},
		},
		{
			"intent", governance.NewIntentLedger("CHAIN-3"), governance.IntentPrefix,
			func() (chain.Draft, error) {
				return governance.IntentDraft(governance.IntentBound, "task-4", when, nil)
			},
		},
		{
			"execution", governance.NewExecutionLedger("CHAIN-4"), governance.ExecutionPrefix,
			func() (chain.Draft, error) {
				return governance.ExecutionDraft(governance.ExecutionStepStarted, "step-1", when, []byte("argv"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.draft()
			if err != nil {
				t.Fatal(err)
			}
			if !recordid.HasPrefix(d.RecordID, tt.prefix) {
				t.Errorf("minted id %q lacks prefix %q", d.RecordID, tt.prefix)
			}
			if d.Timestamp != "2026-01-01T00:00:00Z" {
				t.Errorf("timestamp = %q, want RFC3339 UTC", d.Timestamp)
			}

			l, err := tt.ledger.Append(d)
			if err != nil {
				t.Fatal(err)
			}
			if !l.Validate() {
				t.Errorf("domain chain must validate: %v", l.Inspect())
			}
		})
	}
}

func TestDomainProfiles_rejectForeignRecords(t *testing.T) {
	// An evidence record must not land on the decision chain, and record
	// types never cross domains.
	d, err := governance.EvidenceDraft(governance.EvidenceObservation, "S1", when, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := governance.NewDecisionLedger("CHAIN-2").Append(d); !errors.Is(err, chain.ErrStructural) {
		t.Errorf("cross-domain append err = %v, want ErrStructural", err)
	}

	d.RecordID = "DECISION-" + d.RecordID[len(governance.EvidencePrefix)+1:]
	if _, err := governance.NewDecisionLedger("CHAIN-2").Append(d); !errors.Is(err, chain.ErrStructural) {
		t.Errorf("foreign record type err = %v, want ErrStructural", err)
	}
}

func TestExecutionProfile_frozenFieldLayout(t *testing.T) {
	// The execution domain folds the payload before the prior hash. Verify
	// the exact byte layout independently of the engine.
	l, err := governance.NewExecutionLedger("CHAIN-4").Append(chain.Draft{
		RecordID:   "EXECUTION-aaaa1111",
		RecordType: governance.ExecutionStepStarted,
		SubjectID:  "step-1",
		Timestamp:  "2026-01-01T00:00:00Z",
		Payload:    []byte("argv"),
	})
	if err != nil {
		t.Fatal(err)
	}

	raw := sha256.Sum256([]byte("EXECUTION-aaaa1111\x00STEP_STARTED\x00step-1\x002026-01-01T00:00:00Z\x00argv\x00\x00"))
	if want := hex.EncodeToString(raw[:]); l.HeadHash() != want {
		t.Errorf("execution head = %q, want %q", l.HeadHash(), want)
	}
}

func TestDomainProfiles_distinctLayoutsDiverge(t *testing.T) {
	// Identical field values under the evidence and execution layouts must
	// not collide: the layouts are part of each domain's wire contract.
	ev, err := governance.NewEvidenceLedger("CHAIN-1").Append(chain.Draft{
		RecordID:   "EVIDENCE-aaaa1111",
		RecordType: governance.EvidenceObservation,
		SubjectID:  "S1",
		Timestamp:  "2026-01-01T00:00:00Z",
		Payload:    []byte("p"),
	})
	if err != nil {
		t.Fatal(err)
	}

	exec := governance.ExecutionProfile
	exec.Prefix = governance.EvidencePrefix
	exec.RecordTypes = governance.EvidenceProfile.RecordTypes
	ex, err := chain.New(exec, "CHAIN-1").Append(chain.Draft{
		RecordID:   "EVIDENCE-aaaa1111",
		RecordType: governance.EvidenceObservation,
		SubjectID:  "S1",
		Timestamp:  "2026-01-01T00:00:00Z",
		Payload:    []byte("p"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if ev.HeadHash() == ex.HeadHash() {
		t.Error("default and execution layouts hashed identically")
	}
}
