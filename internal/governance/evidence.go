package governance

import (
	"time"

	"github.com/provenly/chainledger/pkg/chain"
	"github.com/provenly/chainledger/pkg/recordid"
)

// EvidencePrefix tags records of the observation evidence chain.
const EvidencePrefix = "EVIDENCE"

// Record types of the observation evidence chain.
const (
	EvidenceStateTransition = "STATE_TRANSITION"
	EvidenceObservation     = "OBSERVATION"
	EvidenceSnapshot        = "SNAPSHOT"
)

// EvidenceProfile is the chain profile of the observation evidence domain.
var EvidenceProfile = chain.Profile{
	Name:        "evidence",
	Prefix:      EvidencePrefix,
	RecordTypes: []string{EvidenceStateTransition, EvidenceObservation, EvidenceSnapshot},
}

// NewEvidenceLedger returns an empty observation evidence chain.
func NewEvidenceLedger(ledgerID string) chain.Ledger {
	return chain.New(EvidenceProfile, ledgerID)
}

// EvidenceDraft mints a record id and assembles a draft for the evidence
// chain. The payload, if any, must already be serialized by the producer.
func EvidenceDraft(recordType, subjectID string, at time.Time, payload []byte) (chain.Draft, error) {
	id, err := recordid.New(EvidencePrefix)
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
