package identity

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"walletcore/internal/address"
	"walletcore/internal/crypto"
	"walletcore/internal/domain"
	"walletcore/internal/mnemonic"
	"walletcore/internal/signer"
	"walletcore/internal/store"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)

	// ErrMnemonicExists is returned when a wallet already holds a mnemonic.
	ErrMnemonicExists = errors.New("wallet already has a mnemonic")

	// ErrNoMnemonic is returned when deriving without a stored mnemonic.
	ErrNoMnemonic = errors.New("wallet has no mnemonic; create or import one first")

	// ErrAccountNotFound is returned for an unknown account label.
	ErrAccountNotFound = errors.New("account not found")

	// ErrLabelTaken is returned when a label already names another address.
	ErrLabelTaken = errors.New("account label already in use")
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHRP sets the address prefix for new accounts.
func WithHRP(hrp string) Option {
	return func(s *Service) { s.hrp = hrp }
}

// WithCodec sets the keystore codec used to seal secrets.
func WithCodec(c *store.KeystoreCodec) Option {
	return func(s *Service) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithClock overrides the time source for account timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service manages mnemonic, account and keystore lifecycle.
type Service struct {
	wallets  domain.WalletStore
	accounts domain.AccountStore
	codec    *store.KeystoreCodec
	hrp      string
	root     *slog.Logger
	logger   *slog.Logger
	now      func() time.Time
}

// New returns an identity service backed by the given stores.
func New(wallets domain.WalletStore, accounts domain.AccountStore, opts ...Option) *Service {
	s := &Service{
		wallets:  wallets,
		accounts: accounts,
		codec:    store.NewKeystoreCodec(store.DefaultScryptParams()),
		hrp:      address.DefaultHRP,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.root = s.logger
	s.logger = s.logger.With("component", "identity")
	return s
}

// CreateMnemonic generates a new mnemonic, seals it and derives account 0
// under label. The phrase is returned once so the user can back it up.
func (s *Service) CreateMnemonic(password string, label domain.AccountLabel) (string, domain.Account, error) {
	if !isSecurePassphrase(password) {
		return "", domain.Account{}, ErrWeakPassphrase
	}
	m, err := mnemonic.Generate()
	if err != nil {
		return "", domain.Account{}, err
	}
	account, err := s.storeMnemonic(m, password, label, "create_mnemonic")
	if err != nil {
		return "", domain.Account{}, err
	}
	return m.String(), account, nil
}

// ImportMnemonic validates phrase, seals it and derives account 0 under label.
func (s *Service) ImportMnemonic(phrase, password string, label domain.AccountLabel) (domain.Account, error) {
	if !isSecurePassphrase(password) {
		return domain.Account{}, ErrWeakPassphrase
	}
	m, err := mnemonic.FromString(phrase)
	if err != nil {
		return domain.Account{}, err
	}
	return s.storeMnemonic(m, password, label, "import_mnemonic")
}

// DeriveAccount derives the account at index from the stored mnemonic.
func (s *Service) DeriveAccount(password string, label domain.AccountLabel, index int) (domain.Account, error) {
	file, err := s.wallets.LoadKeystore(store.MnemonicKeystoreName())
	if errors.Is(err, store.ErrKeystoreNotFound) {
		return domain.Account{}, ErrNoMnemonic
	}
	if err != nil {
		return domain.Account{}, err
	}
	m, err := store.DecryptMnemonic(file, password)
	if err != nil {
		return domain.Account{}, err
	}
	return s.deriveAndSave(m, password, label, index)
}

// GenerateAccount creates an account from a fresh random key.
func (s *Service) GenerateAccount(password string, label domain.AccountLabel) (domain.Account, error) {
	if !isSecurePassphrase(password) {
		return domain.Account{}, ErrWeakPassphrase
	}
	kp, err := crypto.GenerateKeyPair(rand.Reader)
	if err != nil {
		return domain.Account{}, err
	}
	defer kp.Wipe()
	return s.saveSecret(kp.Secret, password, label, 0, domain.SourceKeystore)
}

// ImportPEM seals the key of PEM block index under label.
func (s *Service) ImportPEM(text []byte, index int, password string, label domain.AccountLabel) (domain.Account, error) {
	if !isSecurePassphrase(password) {
		return domain.Account{}, ErrWeakPassphrase
	}
	secret, err := store.ParsePEM(text, index)
	if err != nil {
		return domain.Account{}, err
	}
	defer secret.Wipe()
	return s.saveSecret(secret, password, label, index, domain.SourcePEM)
}

// ExportPEM decrypts the account key and renders it as PEM.
func (s *Service) ExportPEM(label domain.AccountLabel, password string) ([]byte, error) {
	secret, err := s.LoadSecretKey(label, password)
	if err != nil {
		return nil, err
	}
	defer secret.Wipe()
	s.logger.Info("exported account key", "operation", "export_pem", "label", label.String())
	return store.EncodePEM(secret, s.hrp)
}

// LoadSecretKey decrypts the keystore of the account named label.
func (s *Service) LoadSecretKey(label domain.AccountLabel, password string) (crypto.SecretKey, error) {
	file, err := s.keystoreFor(label)
	if err != nil {
		return crypto.SecretKey{}, err
	}
	return store.KeystoreSource{File: file, Password: password}.SecretKey()
}

// LoadSigner returns a signer for the account named label.
func (s *Service) LoadSigner(label domain.AccountLabel, password string) (*signer.Signer, error) {
	file, err := s.keystoreFor(label)
	if err != nil {
		return nil, err
	}
	return signer.FromSecretKeySource(
		store.KeystoreSource{File: file, Password: password},
		signer.WithLogger(s.root),
		signer.WithHRP(s.hrp),
	)
}

// ListAccounts returns every indexed account.
func (s *Service) ListAccounts() ([]domain.Account, error) {
	return s.accounts.ListAccounts()
}

func (s *Service) storeMnemonic(m *mnemonic.Mnemonic, password string, label domain.AccountLabel, op string) (domain.Account, error) {
	if _, err := s.wallets.LoadKeystore(store.MnemonicKeystoreName()); err == nil {
		return domain.Account{}, ErrMnemonicExists
	} else if !errors.Is(err, store.ErrKeystoreNotFound) {
		return domain.Account{}, err
	}

	file, err := s.codec.EncryptMnemonic(m, password)
	if err != nil {
		return domain.Account{}, err
	}
	if _, err := s.wallets.SaveKeystore(store.MnemonicKeystoreName(), file); err != nil {
		return domain.Account{}, err
	}
	s.logger.Info("mnemonic stored", "operation", op, "keystore_id", file.ID)
	return s.deriveAndSave(m, password, label, 0)
}

func (s *Service) deriveAndSave(m *mnemonic.Mnemonic, password string, label domain.AccountLabel, index int) (domain.Account, error) {
	secret, err := m.DeriveKey(index, "")
	if err != nil {
		return domain.Account{}, err
	}
	defer secret.Wipe()
	return s.saveSecret(secret, password, label, index, domain.SourceMnemonic)
}

func (s *Service) saveSecret(
	secret crypto.SecretKey,
	password string,
	label domain.AccountLabel,
	index int,
	source domain.KeySource,
) (domain.Account, error) {
	pub := secret.PublicKey()
	addr, err := pub.ToAddress(s.hrp)
	if err != nil {
		return domain.Account{}, err
	}
	if label = domain.AccountLabel(strings.TrimSpace(label.String())); label == "" {
		label = domain.AccountLabel(addr.Bech32())
	}
	if existing, ok, err := s.accounts.LoadAccount(label); err != nil {
		return domain.Account{}, err
	} else if ok && existing.Address != addr.Bech32() {
		return domain.Account{}, fmt.Errorf("%w: %s", ErrLabelTaken, label)
	}

	file, err := s.codec.EncryptSecretKey(secret, password, s.hrp)
	if err != nil {
		return domain.Account{}, err
	}
	name := addr.Bech32()
	if _, err := s.wallets.SaveKeystore(name, file); err != nil {
		return domain.Account{}, err
	}

	account := domain.Account{
		Label:     label,
		Address:   addr.Bech32(),
		PublicKey: pub.Hex(),
		Index:     index,
		Source:    source,
		Keystore:  name,
		CreatedAt: s.now().UTC(),
	}
	if err := s.accounts.SaveAccount(account); err != nil {
		return domain.Account{}, err
	}
	s.logger.Info("account saved",
		"operation", "save_account",
		"label", label.String(),
		"address", account.Address,
		"fingerprint", pub.Fingerprint(),
		"source", string(source),
		"index", index,
	)
	return account, nil
}

func (s *Service) keystoreFor(label domain.AccountLabel) (domain.KeystoreFile, error) {
	account, ok, err := s.accounts.LoadAccount(label)
	if err != nil {
		return domain.KeystoreFile{}, err
	}
	if !ok {
		return domain.KeystoreFile{}, fmt.Errorf("%w: %s", ErrAccountNotFound, label)
	}
	return s.wallets.LoadKeystore(account.Keystore)
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
