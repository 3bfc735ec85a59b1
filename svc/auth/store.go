package auth

import (
	"context"
	"sync"
)

// Store is the durable mapping from email to account record. Absence is
// represented by a nil result, never an error; errors are reserved for
// the persistence medium itself.
//
// Implementations must serialize Upsert per email so the one-account-
// per-email invariant survives concurrent registrations.
type Store interface {
	// List returns all known accounts in no particular order.
	List(ctx context.Context) ([]Account, error)
	// Upsert inserts the account if its email is absent, otherwise
	// replaces the stored record. It is the only persistence primitive;
	// registration, MFA enrollment and preference mutation all route
	// through it.
	Upsert(ctx context.Context, acct Account) error
	// FindByEmail returns the account stored under email, or nil when
	// there is none.
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

// MemoryStore keeps accounts in a mutex-guarded map. It backs tests and
// single-process deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]Account)}
}

func (s *MemoryStore) List(ctx context.Context) ([]Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Account, 0, len(s.accounts))
	for _, acct := range s.accounts {
		out = append(out, acct.Clone())
	}
	return out, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, acct Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[acct.Email] = acct.Clone()
	return nil
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.accounts[email]
	if !ok {
		return nil, nil
	}
	clone := acct.Clone()
	return &clone, nil
}
