// Package metrics exposes Prometheus instrumentation for the ledger
// subsystem. Counters are package-level and registered on the default
// registry; the session manager and audit tooling record through the
// helpers rather than touching the collectors directly.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/provenly/chainledger/pkg/chain"
	"github.com/provenly/chainledger/pkg/replay"
)

var (
	ledgerAppendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainledger_appends_total",
		Help: "Total records appended, by governance domain.",
	}, []string{"domain"})

	ledgerAppendsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainledger_appends_rejected_total",
		Help: "Total appends rejected before chaining, by governance domain and reason.",
	}, []string{"domain", "reason"})

	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainledger_validations_total",
		Help: "Total full-chain validations, by result.",
	}, []string{"result"})

	validationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainledger_validation_failures_total",
		Help: "Total validation failures, by violation kind.",
	}, []string{"kind"})

	replayVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainledger_replay_verdicts_total",
		Help: "Total replay guard verdicts, by verdict.",
	}, []string{"verdict"})

	ledgerLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "chainledger_ledger_length",
		Help: "Current record count per open ledger.",
	}, []string{"ledger_id"})
)

// RecordAppend records a successful append on a domain's chain.
func RecordAppend(domain string) {
	ledgerAppendsTotal.WithLabelValues(domain).Inc()
}

// RecordAppendRejected records an append turned away before chaining.
func RecordAppendRejected(domain, reason string) {
	ledgerAppendsRejected.WithLabelValues(domain, reason).Inc()
}

// RecordValidation records a full-chain validation outcome. A nil violation
// counts as success; otherwise the violation kind is recorded.
func RecordValidation(v *chain.Violation) {
	if v == nil {
		validationsTotal.WithLabelValues("valid").Inc()
		return
	}
	validationsTotal.WithLabelValues("invalid").Inc()
	validationFailures.WithLabelValues(v.Kind.String()).Inc()
}

// RecordReplayVerdict records a replay guard verdict.
func RecordReplayVerdict(v replay.Verdict) {
	replayVerdictsTotal.WithLabelValues(v.String()).Inc()
}

// SetLedgerLength sets the length gauge for an open ledger.
func SetLedgerLength(ledgerID string, n int) {
	ledgerLength.WithLabelValues(ledgerID).Set(float64(n))
}

// ForgetLedger drops the length gauge for a retired ledger.
func ForgetLedger(ledgerID string) {
	ledgerLength.DeleteLabelValues(ledgerID)
}
