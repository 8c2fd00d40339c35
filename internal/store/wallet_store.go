package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"walletcore/internal/domain"
)

const (
	walletsDir   = "wallets"
	keystoreExt  = ".json"
	mnemonicName = "mnemonic"
)

// ErrKeystoreNotFound is returned when no keystore file exists under a name.
var ErrKeystoreNotFound = errors.New("keystore not found")

// WalletFileStore persists keystore files under <home>/wallets.
type WalletFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewWalletFileStore returns a WalletFileStore rooted at home.
func NewWalletFileStore(home string) *WalletFileStore {
	return &WalletFileStore{dir: filepath.Join(home, walletsDir)}
}

// MnemonicKeystoreName is the name the mnemonic keystore is saved under.
func MnemonicKeystoreName() string { return mnemonicName }

// SaveKeystore writes file as <name>.json with owner-only permissions.
func (s *WalletFileStore) SaveKeystore(name string, file domain.KeystoreFile) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return "", err
	}
	path := s.path(name)
	if err := writeJSON(path, file, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// LoadKeystore reads the keystore saved under name.
func (s *WalletFileStore) LoadKeystore(name string) (domain.KeystoreFile, error) {
	if err := checkName(name); err != nil {
		return domain.KeystoreFile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var file domain.KeystoreFile
	b, err := readFile(s.path(name))
	if err != nil {
		return domain.KeystoreFile{}, err
	}
	if b == nil {
		return domain.KeystoreFile{}, fmt.Errorf("%w: %s", ErrKeystoreNotFound, name)
	}
	if err := decodeJSON(b, &file); err != nil {
		return domain.KeystoreFile{}, fmt.Errorf("%w: %v", ErrInvalidKeystore, err)
	}
	return file, nil
}

// ListKeystores returns the sorted names of all saved keystores.
func (s *WalletFileStore) ListKeystores() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), keystoreExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), keystoreExt))
	}
	sort.Strings(names)
	return names, nil
}

func (s *WalletFileStore) path(name string) string {
	return filepath.Join(s.dir, name+keystoreExt)
}

func checkName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid keystore name %q", name)
	}
	return nil
}

// Compile-time assertion that WalletFileStore implements domain.WalletStore.
var _ domain.WalletStore = (*WalletFileStore)(nil)
