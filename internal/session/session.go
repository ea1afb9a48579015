// Package session owns ledger lifecycle and enforces the single-writer
// discipline the chain engine requires.
//
// A Session holds the current Ledger value for one ledger id behind a
// mutex: appends against the same ledger are serialized here, while readers
// take immutable snapshots at any time with no coordination beyond the
// brief value copy. The chain and replay packages stay purely functional;
// this package is the caller that fulfills their documented preconditions.
package session

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/provenly/chainledger/internal/metrics"
	"github.com/provenly/chainledger/pkg/chain"
	"github.com/provenly/chainledger/pkg/replay"
)

var (
	// ErrAlreadyOpen marks an Open against a ledger id that is in use.
	ErrAlreadyOpen = errors.New("session: ledger already open")
	// ErrNotFound marks a lookup of a ledger id with no open session.
	ErrNotFound = errors.New("session: ledger not open")
)

// Manager tracks the open ledger sessions of one process, keyed by
// ledger id.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	logger   *zap.Logger
}

// NewManager creates an empty session manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// Open starts a session with an empty ledger for the given domain profile.
// Exactly one session may be open per ledger id.
func (m *Manager) Open(profile chain.Profile, ledgerID string, policy replay.Policy) (*Session, error) {
	if ledgerID == "" {
		return nil, fmt.Errorf("session: empty ledger id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[ledgerID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyOpen, ledgerID)
	}

	s := &Session{
		ledger: chain.New(profile, ledgerID),
		seen:   replay.NewSet(),
		policy: policy,
		logger: m.logger.With(zap.String("ledger_id", ledgerID), zap.String("domain", profile.Name)),
	}
	m.sessions[ledgerID] = s

	m.logger.Info("ledger session opened",
		zap.String("ledger_id", ledgerID),
		zap.String("domain", profile.Name),
		zap.Bool("allow_replay", policy.AllowReplay),
	)
	return s, nil
}

// Get returns the open session for a ledger id.
func (m *Manager) Get(ledgerID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[ledgerID]
	return s, ok
}

// Close retires a session and returns the final ledger snapshot. Archival
// of the snapshot is the caller's business; the manager only ends the
// session's write authority.
func (m *Manager) Close(ledgerID string) (chain.Snapshot, error) {
	m.mu.Lock()
	s, ok := m.sessions[ledgerID]
	delete(m.sessions, ledgerID)
	m.mu.Unlock()

	if !ok {
		return chain.Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, ledgerID)
	}

	final := s.Ledger()
	metrics.ForgetLedger(ledgerID)
	m.logger.Info("ledger session closed",
		zap.String("ledger_id", ledgerID),
		zap.Int("length", final.Length()),
		zap.String("head", final.HeadHash()),
	)
	return final.Snapshot(), nil
}

// Session serializes writes to one ledger and guards against content
// replay within its scope.
type Session struct {
	mu     sync.Mutex
	ledger chain.Ledger
	seen   *replay.Set
	policy replay.Policy
	logger *zap.Logger
}

// Append chains one record onto the session's ledger. Structure is checked
// first, then the content fingerprint is run through the replay guard under
// the session policy; only then does the new ledger value replace the old.
// The returned verdict distinguishes novel content from admitted duplicates.
func (s *Session) Append(d chain.Draft) (chain.Record, replay.Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	domain := s.ledger.Profile().Name

	next, err := s.ledger.Append(d)
	if err != nil {
		metrics.RecordAppendRejected(domain, "structural")
		return chain.Record{}, 0, err
	}

	verdict, err := s.seen.Accept(d.ContentHash(), s.policy)
	metrics.RecordReplayVerdict(verdict)
	if err != nil {
		metrics.RecordAppendRejected(domain, verdict.String())
		s.logger.Warn("append rejected by replay guard",
			zap.String("record_id", d.RecordID),
			zap.String("verdict", verdict.String()),
		)
		return chain.Record{}, verdict, err
	}

	s.ledger = next
	metrics.RecordAppend(domain)
	metrics.SetLedgerLength(next.ID(), next.Length())

	rec, _ := next.Last()
	s.logger.Debug("record appended",
		zap.String("record_id", rec.RecordID),
		zap.String("record_type", rec.RecordType),
		zap.Int("length", next.Length()),
		zap.String("verdict", verdict.String()),
	)
	return rec, verdict, nil
}

// Ledger returns the current immutable ledger value. The snapshot is safe
// to read, validate, and export concurrently with further appends.
func (s *Session) Ledger() chain.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger
}

// Audit recomputes the full chain, records the outcome, and returns the
// first violation found, or nil when the chain is intact.
func (s *Session) Audit() *chain.Violation {
	l := s.Ledger()
	v := l.Inspect()
	metrics.RecordValidation(v)
	if v != nil {
		s.logger.Error("ledger failed audit",
			zap.String("kind", v.Kind.String()),
			zap.Int("index", v.Index),
			zap.String("detail", v.Detail),
		)
	}
	return v
}
