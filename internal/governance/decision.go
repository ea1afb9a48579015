package governance

import (
	"time"

	"github.com/provenly/chainledger/pkg/chain"
	"github.com/provenly/chainledger/pkg/recordid"
)

// DecisionPrefix tags records of the human-decision audit chain.
const DecisionPrefix = "DECISION"

// Record types of the human-decision audit chain.
const (
	DecisionProposed  = "PROPOSED"
	DecisionApproved  = "APPROVED"
	DecisionRejected  = "REJECTED"
	DecisionEscalated = "ESCALATED"
)

// DecisionProfile is the chain profile of the human-decision audit domain.
var DecisionProfile = chain.Profile{
	Name:        "decision",
	Prefix:      DecisionPrefix,
	RecordTypes: []string{DecisionProposed, DecisionApproved, DecisionRejected, DecisionEscalated},
}

// NewDecisionLedger returns an empty human-decision audit chain.
func NewDecisionLedger(ledgerID string) chain.Ledger {
	return chain.New(DecisionProfile, ledgerID)
}

// DecisionDraft mints a record id and assembles a draft for the decision
// audit chain.
func DecisionDraft(recordType, subjectID string, at time.Time, payload []byte) (chain.Draft, error) {
	id, err := recordid.New(DecisionPrefix)
	if err != nil {
		return chain.Draft{}, err
	}
	return chain.Draft{
		RecordID:   id.String(),
		RecordType: recordType,
		SubjectID:  subjectID,
		Timestamp:  at.UTC().Format(time.RFC3339),
		Payload:    payload,
	}, nil
}
