package store

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"walletcore/internal/domain"
)

const accountsFile = "accounts.json"

// AccountFileStore persists the account index to disk.
type AccountFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewAccountFileStore returns an AccountFileStore rooted at dir.
func NewAccountFileStore(dir string) *AccountFileStore {
	return &AccountFileStore{dir: dir}
}

// SaveAccount stores or replaces the account with the same label.
func (s *AccountFileStore) SaveAccount(account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	path := filepath.Join(s.dir, accountsFile)
	accounts := make(map[domain.AccountLabel]domain.Account)
	if err := readJSON(path, &accounts); err != nil {
		return err
	}
	accounts[account.Label] = account
	return writeJSON(path, accounts, 0o600)
}

// LoadAccount retrieves the account stored under label.
func (s *AccountFileStore) LoadAccount(label domain.AccountLabel) (domain.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load()
	if err != nil {
		return domain.Account{}, false, err
	}
	account, ok := accounts[label]
	return account, ok, nil
}

// ListAccounts returns all accounts ordered by label.
func (s *AccountFileStore) ListAccounts() ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func (s *AccountFileStore) load() (map[domain.AccountLabel]domain.Account, error) {
	accounts := make(map[domain.AccountLabel]domain.Account)
	if err := readJSON(filepath.Join(s.dir, accountsFile), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Compile-time assertion that AccountFileStore implements domain.AccountStore.
var _ domain.AccountStore = (*AccountFileStore)(nil)
