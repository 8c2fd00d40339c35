package message

import (
	"errors"
	"fmt"
	"log/slog"

	"walletcore/internal/address"
	"walletcore/internal/crypto"
	"walletcore/internal/domain"
	"walletcore/internal/protocol/pubkeyenc"
	"walletcore/internal/signer"
)

var (
	// ErrInvalidRecipient is returned when a recipient is neither a bech32
	// address nor a hex public key.
	ErrInvalidRecipient = errors.New("invalid recipient")

	// ErrSenderMismatch is returned when a transaction names a sender other
	// than the signing account.
	ErrSenderMismatch = errors.New("transaction sender does not match account")
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

// WithEncryptor sets the encryptor used by Seal.
func WithEncryptor(e *pubkeyenc.Encryptor) Option {
	return func(s *Service) {
		if e != nil {
			s.encryptor = e
		}
	}
}

// WithHRP sets the address prefix used to parse and render addresses.
func WithHRP(hrp string) Option {
	return func(s *Service) { s.hrp = hrp }
}

// Service seals, opens and signs payloads on behalf of local accounts.
type Service struct {
	identities domain.IdentityService
	encryptor  *pubkeyenc.Encryptor
	hrp        string
	logger     *slog.Logger
}

// New constructs a message service that loads keys through identities.
func New(identities domain.IdentityService, opts ...Option) *Service {
	s := &Service{
		identities: identities,
		encryptor:  pubkeyenc.NewEncryptor(),
		hrp:        address.DefaultHRP,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "message")
	return s
}

// Seal encrypts plaintext from the account named label to recipient, which
// may be a bech32 address or a hex public key.
func (s *Service) Seal(
	label domain.AccountLabel,
	password string,
	recipient string,
	plaintext []byte,
) (*pubkeyenc.Envelope, error) {
	to, err := s.parseKey(recipient)
	if err != nil {
		return nil, err
	}
	secret, err := s.identities.LoadSecretKey(label, password)
	if err != nil {
		return nil, err
	}
	defer secret.Wipe()

	env, err := s.encryptor.Encrypt(plaintext, to, secret)
	if err != nil {
		s.logger.Warn("encrypt failed", "operation", "seal", "recipient", to.Hex(), "error", err)
		return nil, err
	}
	s.logger.Info("payload sealed", "operation", "seal", "recipient", to.Hex(), "bytes", len(plaintext))
	return env, nil
}

// Open decrypts an envelope addressed to the account named label.
func (s *Service) Open(
	label domain.AccountLabel,
	password string,
	env *pubkeyenc.Envelope,
) (domain.DecryptedMessage, error) {
	secret, err := s.identities.LoadSecretKey(label, password)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	defer secret.Wipe()

	plaintext, err := pubkeyenc.Decrypt(env, secret)
	if err != nil {
		s.logger.Warn("decrypt failed", "operation", "open", "error", err)
		return domain.DecryptedMessage{}, err
	}
	from, err := env.Originator()
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	fromAddr, err := from.ToAddress(s.hrp)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	toAddr, err := secret.PublicKey().ToAddress(s.hrp)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	s.logger.Info("payload opened", "operation", "open", "from", fromAddr.Bech32(), "bytes", len(plaintext))
	return domain.DecryptedMessage{
		From:      fromAddr.Bech32(),
		To:        toAddr.Bech32(),
		Plaintext: plaintext,
	}, nil
}

// SignMessage signs message with the account named label.
func (s *Service) SignMessage(
	label domain.AccountLabel,
	password string,
	message []byte,
) (*domain.SignableMessage, error) {
	sg, err := s.identities.LoadSigner(label, password)
	if err != nil {
		return nil, err
	}
	msg := domain.NewSignableMessage(message)
	if err := sg.Sign(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// VerifyMessage reports whether signatureHex is a valid signature of
// message by addr. Malformed addresses or signatures are errors; a
// well-formed signature that does not verify is (false, nil).
func (s *Service) VerifyMessage(addr string, message []byte, signatureHex string) (bool, error) {
	pub, err := s.parseKey(addr)
	if err != nil {
		return false, err
	}
	sig, err := crypto.SignatureFromHex(signatureHex)
	if err != nil {
		return false, err
	}
	return signer.NewVerifier(pub).Verify(domain.NewSignableMessage(message), sig), nil
}

// SignTransaction signs tx with the account named label. An empty sender
// is filled with the account address.
func (s *Service) SignTransaction(label domain.AccountLabel, password string, tx *domain.Transaction) error {
	sg, err := s.identities.LoadSigner(label, password)
	if err != nil {
		return err
	}
	self, err := sg.Address()
	if err != nil {
		return err
	}
	if tx.Sender.IsZero() {
		tx.Sender = self
	} else if !tx.Sender.Equal(self) {
		return fmt.Errorf("%w: %s", ErrSenderMismatch, tx.Sender.Bech32())
	}
	if err := sg.Sign(tx); err != nil {
		return err
	}
	s.logger.Info("transaction signed", "operation", "sign_transaction", "sender", self.Bech32(), "nonce", tx.Nonce)
	return nil
}

func (s *Service) parseKey(value string) (crypto.PublicKey, error) {
	addr, err := address.Parse(value, "")
	if err != nil {
		return crypto.PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidRecipient, err)
	}
	return crypto.PublicKeyFromBytes(addr.PubKey())
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
