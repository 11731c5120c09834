package passwords

import (
	"sync"

	"passkeeper/internal/domain"
	"passkeeper/internal/logger"
)

// Service adapts a domain.RecordStore to the notify-on-change contract.
type Service struct {
	store domain.RecordStore
	log   logger.Logger

	mu       sync.Mutex
	listener domain.Observer
	last     []domain.Record // last list delivered, nil before the first
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for failure reports.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithListener registers the observer at construction.
func WithListener(l domain.Observer) Option {
	return func(s *Service) { s.listener = l }
}

// New returns a Service over store.
func New(store domain.RecordStore, opts ...Option) *Service {
	s := &Service{store: store, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetPassword unlocks the underlying store.
func (s *Service) SetPassword(password string) {
	s.store.SetPassword(password)
}

// LoadPasswords loads the store file and reports how it went. The observer
// is notified with the current records whatever the outcome.
func (s *Service) LoadPasswords() domain.Outcome {
	outcome := domain.OutcomeLoadSucceeded
	if err := s.store.Load(); err != nil {
		s.logFailure("load", err)
		outcome = domain.OutcomeLoadFailed
		if domain.IsKind(err, domain.KindCorrupted) {
			outcome = domain.OutcomeLoadCorrupted
		}
	}
	s.notify(s.store.Records())
	s.report(outcome)
	return outcome
}

// StorePasswords commits pending changes.
func (s *Service) StorePasswords() domain.Outcome {
	outcome := domain.OutcomeStoreSucceeded
	ok, err := s.store.Store()
	if !ok || err != nil {
		s.logFailure("store", err)
		outcome = domain.OutcomeStoreFailed
	}
	s.report(outcome)
	return outcome
}

// AddPassword adds a record; false means the label is already taken.
func (s *Service) AddPassword(label, secret string) bool {
	return s.mutated(s.store.Add(label, secret))
}

// UpdatePassword replaces the secret of an existing label.
func (s *Service) UpdatePassword(label, secret string) bool {
	return s.mutated(s.store.Update(label, secret))
}

// RemovePassword deletes a record.
func (s *Service) RemovePassword(label string) bool {
	return s.mutated(s.store.Remove(label))
}

func (s *Service) Find(label string) (domain.Record, bool) { return s.store.Find(label) }

func (s *Service) Passwords() []domain.Record { return s.store.Records() }

// SetListener replaces the observer. If a list was already delivered the new
// observer receives it straight away. A nil observer stops notifications.
func (s *Service) SetListener(l domain.Observer) {
	s.mu.Lock()
	s.listener = l
	last := domain.CloneRecords(s.last)
	replay := s.last != nil
	s.mu.Unlock()

	if l != nil && replay {
		l.RecordsChanged(last)
	}
}

// Destroy locks the store and forgets the last delivered list.
func (s *Service) Destroy() {
	s.store.Destroy()
	s.mu.Lock()
	s.last = nil
	s.mu.Unlock()
}

func (s *Service) mutated(ok bool) bool {
	if ok {
		s.notify(s.store.Records())
	}
	return ok
}

// notify delivers records outside the lock so the observer may call back in.
func (s *Service) notify(records []domain.Record) {
	if records == nil {
		records = []domain.Record{}
	}
	s.mu.Lock()
	s.last = records
	l := s.listener
	s.mu.Unlock()

	if l != nil {
		l.RecordsChanged(domain.CloneRecords(records))
	}
}

func (s *Service) report(outcome domain.Outcome) {
	s.mu.Lock()
	l, ok := s.listener.(domain.Listener)
	s.mu.Unlock()

	if ok {
		l.Outcome(outcome)
	}
}

func (s *Service) logFailure(op string, err error) {
	if err == nil {
		s.log.Error(op+" failed", "op", op)
		return
	}
	s.log.Error(op+" failed", "op", op, "kind", domain.KindOf(err).String(), "err", err)
}

// Compile-time assertion that Service implements domain.PasswordService.
var _ domain.PasswordService = (*Service)(nil)
