// FILE: internal/repository/memory/store.go
// In-memory backing store implementing the repository contracts. Used by
// unit tests and local experiments; mirrors the database-level invariants
// (unique feature name, one flag per principal+feature, delete cascade).
package memory

import (
	"context"
	"sync"
	"time"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/repository/contract"
	"featuregate-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.Mutex
	features map[uuid.UUID]*entity.Feature
	flags    map[uuid.UUID]*entity.Flag
	audits   []*entity.AuditLog

	// WriteCalls counts every mutating repository call, so tests can assert
	// that short-circuited operations never touch the store.
	WriteCalls int

	lastStamp time.Time
}

// now returns a strictly increasing timestamp so ordering by created_at is
// deterministic even when calls land in the same clock tick.
// Callers must hold mu.
func (s *Store) now() time.Time {
	t := time.Now()
	if !t.After(s.lastStamp) {
		t = s.lastStamp.Add(time.Nanosecond)
	}
	s.lastStamp = t
	return t
}

func NewStore() *Store {
	return &Store{
		features: make(map[uuid.UUID]*entity.Feature),
		flags:    make(map[uuid.UUID]*entity.Flag),
	}
}

func (s *Store) Factory() unitofwork.RepositoryFactory {
	return &factory{store: s}
}

func (s *Store) AuditLogs() []*entity.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.AuditLog, len(s.audits))
	copy(out, s.audits)
	return out
}

type factory struct {
	store *Store
}

func (f *factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

type unitOfWork struct {
	store *Store
}

// The memory store has no transactions; Begin/Commit/Rollback are no-ops.

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) FeatureRepository() contract.FeatureRepository {
	return &featureRepository{store: u.store}
}

func (u *unitOfWork) FlagRepository() contract.FlagRepository {
	return &flagRepository{store: u.store}
}

func (u *unitOfWork) AuditLogRepository() contract.AuditLogRepository {
	return &auditLogRepository{store: u.store}
}
