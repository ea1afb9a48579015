package governance

import (
	"time"

	"github.com/provenly/chainledger/pkg/canonical"
	"github.com/provenly/chainledger/pkg/chain"
	"github.com/provenly/chainledger/pkg/recordid"
)

// ExecutionPrefix tags records of the execution evidence-linking chain.
const ExecutionPrefix = "EXECUTION"

// Record types of the execution evidence-linking chain.
const (
	ExecutionStepStarted    = "STEP_STARTED"
	ExecutionStepCompleted  = "STEP_COMPLETED"
	ExecutionStepFailed     = "STEP_FAILED"
	ExecutionEvidenceLinked = "EVIDENCE_LINKED"
)

// ExecutionProfile is the chain profile of the execution ledger domain.
// Its historical hash layout folds the payload before the prior hash, so
// it carries a custom field layout instead of DefaultFields; the layout is
// frozen for as long as execution records exist under it.
var ExecutionProfile = chain.Profile{
	Name:        "execution",
	Prefix:      ExecutionPrefix,
	RecordTypes: []string{ExecutionStepStarted, ExecutionStepCompleted, ExecutionStepFailed, ExecutionEvidenceLinked},
	Fields:      executionFields,
}

// executionFields is the execution domain's frozen field order:
//
//	record_id, record_type, subject_id, timestamp, [payload], prior_hash
func executionFields(r chain.Record) []canonical.Field {
	fields := []canonical.Field{
		canonical.String(r.RecordID),
		canonical.String(r.RecordType),
		canonical.String(r.SubjectID),
		canonical.String(r.Timestamp),
	}
	if len(r.Payload) > 0 {
		fields = append(fields, canonical.Bytes(r.Payload))
	}
	return append(fields, canonical.String(r.PriorHash))
}

// NewExecutionLedger returns an empty execution evidence-linking chain.
func NewExecutionLedger(ledgerID string) chain.Ledger {
	return chain.New(ExecutionProfile, ledgerID)
}

// ExecutionDraft mints a record id and assembles a draft for the execution
// chain.
func ExecutionDraft(recordType, subjectID string, at time.Time, payload []byte) (chain.Draft, error) {
	id, err := recordid.New(ExecutionPrefix)
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
