package governance

import (
	"time"

	"github.com/provenly/chainledger/pkg/chain"
	"github.com/provenly/chainledger/pkg/recordid"
)

// IntentPrefix tags records of the intent-binding audit chain.
const IntentPrefix = "INTENT"

// Record types of the intent-binding audit chain.
const (
	IntentDeclared = "DECLARED"
	IntentBound    = "BOUND"
	IntentRevoked  = "REVOKED"
)

// IntentProfile is the chain profile of the intent-binding audit domain.
var IntentProfile = chain.Profile{
	Name:        "intent",
	Prefix:      IntentPrefix,
	RecordTypes: []string{IntentDeclared, IntentBound, IntentRevoked},
}

// NewIntentLedger returns an empty intent-binding audit chain.
func NewIntentLedger(ledgerID string) chain.Ledger {
	return chain.New(IntentProfile, ledgerID)
}

// IntentDraft mints a record id and assembles a draft for the intent
// audit chain.
func IntentDraft(recordType, subjectID string, at time.Time, payload []byte) (chain.Draft, error) {
	id, err := recordid.New(IntentPrefix)
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
