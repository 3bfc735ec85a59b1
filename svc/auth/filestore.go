package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists accounts as a JSON array in a single file, the
// format the browser reference kept in localStorage. Suited to
// single-writer deployments; all operations serialize on one mutex and
// writes go through a temp-file rename so a crash never leaves a
// half-written store behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the JSON file at path. The
// file is created lazily on first Upsert.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) List(ctx context.Context) ([]Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) Upsert(ctx context.Context, acct Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range accounts {
		if accounts[i].Email == acct.Email {
			accounts[i] = acct
			replaced = true
			break
		}
	}
	if !replaced {
		accounts = append(accounts, acct)
	}

	return s.save(accounts)
}

func (s *FileStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Email == email {
			clone := accounts[i].Clone()
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *FileStore) load() ([]Account, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read account store: %w", err)
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode account store: %w", err)
	}
	return accounts, nil
}

func (s *FileStore) save(accounts []Account) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".accounts-*")
	if err != nil {
		return fmt.Errorf("write account store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write account store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write account store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write account store: %w", err)
	}
	return nil
}
