package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"

	"walletcore/internal/address"
	"walletcore/internal/crypto"
	"walletcore/internal/domain"
	"walletcore/internal/mnemonic"
	"walletcore/internal/util/memzero"
)

const (
	// KeystoreVersion is the only keystore layout this package reads or writes.
	KeystoreVersion = 4

	keystoreCipher = "aes-128-ctr"
	keystoreKDF    = "scrypt"
	keystoreDKLen  = 32
	keystoreSalt   = 32
	keystoreIV     = 16

	// Upper bounds on scrypt cost accepted when opening a keystore.
	maxScryptN      = 1 << 20
	maxScryptR      = 16
	maxScryptP      = 16
	maxScryptMemory = 1 << 30
)

var (
	// ErrWrongPassword is returned when the keystore MAC does not match,
	// which means the password is wrong or the file was modified.
	ErrWrongPassword = errors.New("wrong password or corrupted keystore")

	// ErrInvalidKeystore is returned for files that do not follow the
	// keystore schema.
	ErrInvalidKeystore = errors.New("invalid keystore")
)

// ScryptParams are the scrypt cost parameters used when sealing.
type ScryptParams struct {
	N int `yaml:"scryptN"`
	R int `yaml:"scryptR"`
	P int `yaml:"scryptP"`
}

// DefaultScryptParams returns the parameters wallet software expects.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 4096, R: 8, P: 1} }

func (p ScryptParams) orDefault() ScryptParams {
	d := DefaultScryptParams()
	if p.N <= 1 || p.N&(p.N-1) != 0 {
		p.N = d.N
	}
	if p.R <= 0 {
		p.R = d.R
	}
	if p.P <= 0 {
		p.P = d.P
	}
	return p
}

// KeystoreCodec seals and opens keystore files.
type KeystoreCodec struct {
	params ScryptParams
	rand   io.Reader
}

// NewKeystoreCodec returns a codec that seals with params. Out-of-range
// parameters fall back to DefaultScryptParams.
func NewKeystoreCodec(params ScryptParams) *KeystoreCodec {
	return &KeystoreCodec{params: params.orDefault(), rand: rand.Reader}
}

// WithRandom returns a copy of the codec that draws salts, IVs and ids from r.
func (c *KeystoreCodec) WithRandom(r io.Reader) *KeystoreCodec {
	cp := *c
	cp.rand = r
	return &cp
}

// EncryptSecretKey seals secret as a secretKey keystore. The plaintext is
// the seed followed by the public key.
func (c *KeystoreCodec) EncryptSecretKey(secret crypto.SecretKey, password, hrp string) (domain.KeystoreFile, error) {
	pub := secret.PublicKey()
	addr, err := pub.ToAddress(hrp)
	if err != nil {
		return domain.KeystoreFile{}, err
	}

	raw := append(secret.Bytes(), pub.Slice()...)
	defer memzero.Zero(raw)

	file, err := c.seal(raw, password)
	if err != nil {
		return domain.KeystoreFile{}, err
	}
	file.Kind = domain.KeystoreKindSecretKey
	file.Address = addr.Hex()
	file.Bech32 = addr.Bech32()
	return file, nil
}

// EncryptMnemonic seals the phrase text as a mnemonic keystore.
func (c *KeystoreCodec) EncryptMnemonic(m *mnemonic.Mnemonic, password string) (domain.KeystoreFile, error) {
	raw := []byte(m.String())
	defer memzero.Zero(raw)

	file, err := c.seal(raw, password)
	if err != nil {
		return domain.KeystoreFile{}, err
	}
	file.Kind = domain.KeystoreKindMnemonic
	return file, nil
}

// DecryptSecretKey opens a secretKey keystore.
func DecryptSecretKey(file domain.KeystoreFile, password string) (crypto.SecretKey, error) {
	if file.Kind != domain.KeystoreKindSecretKey {
		return crypto.SecretKey{}, fmt.Errorf("%w: kind %q is not %q", ErrInvalidKeystore, file.Kind, domain.KeystoreKindSecretKey)
	}
	raw, err := open(file, password)
	if err != nil {
		return crypto.SecretKey{}, err
	}
	defer memzero.Zero(raw)

	if len(raw) != crypto.SeedSize+crypto.PublicKeySize {
		return crypto.SecretKey{}, fmt.Errorf("%w: secret payload is %d bytes", ErrInvalidKeystore, len(raw))
	}
	secret, err := crypto.SecretKeyFromBytes(raw[:crypto.SeedSize])
	if err != nil {
		return crypto.SecretKey{}, err
	}
	pub := secret.PublicKey()
	if !hmac.Equal(pub.Slice(), raw[crypto.SeedSize:]) {
		secret.Wipe()
		return crypto.SecretKey{}, fmt.Errorf("%w: public key does not match secret key", ErrInvalidKeystore)
	}
	if file.Address != "" && file.Address != pub.Hex() {
		secret.Wipe()
		return crypto.SecretKey{}, fmt.Errorf("%w: address does not match secret key", ErrInvalidKeystore)
	}
	return secret, nil
}

// DecryptMnemonic opens a mnemonic keystore.
func DecryptMnemonic(file domain.KeystoreFile, password string) (*mnemonic.Mnemonic, error) {
	if file.Kind != domain.KeystoreKindMnemonic {
		return nil, fmt.Errorf("%w: kind %q is not %q", ErrInvalidKeystore, file.Kind, domain.KeystoreKindMnemonic)
	}
	raw, err := open(file, password)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)
	return mnemonic.FromString(string(raw))
}

// KeystoreAddress returns the address recorded in a secretKey keystore.
func KeystoreAddress(file domain.KeystoreFile, hrp string) (address.Address, error) {
	if file.Bech32 != "" {
		if a, err := address.FromBech32(file.Bech32, hrp); err == nil {
			return a, nil
		}
	}
	return address.FromHex(file.Address, hrp)
}

// seal derives a key from password and encrypts raw into a keystore envelope.
func (c *KeystoreCodec) seal(raw []byte, password string) (domain.KeystoreFile, error) {
	var salt [keystoreSalt]byte
	var iv [keystoreIV]byte
	if _, err := io.ReadFull(c.rand, salt[:]); err != nil {
		return domain.KeystoreFile{}, err
	}
	if _, err := io.ReadFull(c.rand, iv[:]); err != nil {
		return domain.KeystoreFile{}, err
	}
	id, err := uuid.NewRandomFromReader(c.rand)
	if err != nil {
		return domain.KeystoreFile{}, err
	}

	p := c.params
	if err := checkScrypt(domain.KeystoreKDFParams{N: p.N, R: p.R, P: p.P}); err != nil {
		return domain.KeystoreFile{}, err
	}
	dk, err := scrypt.Key([]byte(password), salt[:], p.N, p.R, p.P, keystoreDKLen)
	if err != nil {
		return domain.KeystoreFile{}, err
	}
	defer memzero.Zero(dk)

	ct, err := ctr(dk[:16], iv[:], raw)
	if err != nil {
		return domain.KeystoreFile{}, err
	}

	return domain.KeystoreFile{
		Version: KeystoreVersion,
		ID:      id.String(),
		Crypto: domain.KeystoreCrypto{
			Ciphertext:   hex.EncodeToString(ct),
			CipherParams: domain.KeystoreCipherParams{IV: hex.EncodeToString(iv[:])},
			Cipher:       keystoreCipher,
			KDF:          keystoreKDF,
			KDFParams: domain.KeystoreKDFParams{
				DKLen: keystoreDKLen,
				Salt:  hex.EncodeToString(salt[:]),
				N:     p.N,
				R:     p.R,
				P:     p.P,
			},
			MAC: hex.EncodeToString(mac(dk[16:32], ct)),
		},
	}, nil
}

// checkScrypt bounds the work a keystore file can demand from scrypt.
func checkScrypt(kp domain.KeystoreKDFParams) error {
	switch {
	case kp.N <= 1 || kp.N > maxScryptN || kp.N&(kp.N-1) != 0:
		return fmt.Errorf("%w: scrypt n %d", ErrInvalidKeystore, kp.N)
	case kp.R <= 0 || kp.R > maxScryptR:
		return fmt.Errorf("%w: scrypt r %d", ErrInvalidKeystore, kp.R)
	case kp.P <= 0 || kp.P > maxScryptP:
		return fmt.Errorf("%w: scrypt p %d", ErrInvalidKeystore, kp.P)
	case 128*kp.N*kp.R > maxScryptMemory:
		return fmt.Errorf("%w: scrypt n*r too large", ErrInvalidKeystore)
	}
	return nil
}

// open checks the MAC before decrypting.
func open(file domain.KeystoreFile, password string) ([]byte, error) {
	if file.Version != KeystoreVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidKeystore, file.Version)
	}
	c := file.Crypto
	if c.Cipher != keystoreCipher || c.KDF != keystoreKDF {
		return nil, fmt.Errorf("%w: unsupported %s/%s", ErrInvalidKeystore, c.KDF, c.Cipher)
	}
	if c.KDFParams.DKLen != keystoreDKLen {
		return nil, fmt.Errorf("%w: dklen %d", ErrInvalidKeystore, c.KDFParams.DKLen)
	}
	salt, err := hex.DecodeString(c.KDFParams.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrInvalidKeystore, err)
	}
	iv, err := hex.DecodeString(c.CipherParams.IV)
	if err != nil || len(iv) != keystoreIV {
		return nil, fmt.Errorf("%w: iv", ErrInvalidKeystore)
	}
	ct, err := hex.DecodeString(c.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %v", ErrInvalidKeystore, err)
	}
	want, err := hex.DecodeString(c.MAC)
	if err != nil {
		return nil, fmt.Errorf("%w: mac: %v", ErrInvalidKeystore, err)
	}

	kp := c.KDFParams
	if err := checkScrypt(kp); err != nil {
		return nil, err
	}
	dk, err := scrypt.Key([]byte(password), salt, kp.N, kp.R, kp.P, kp.DKLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeystore, err)
	}
	defer memzero.Zero(dk)

	if !hmac.Equal(mac(dk[16:32], ct), want) {
		return nil, ErrWrongPassword
	}
	return ctr(dk[:16], iv, ct)
}

func ctr(key, iv, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)
	return out, nil
}

func mac(key, ct []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(ct)
	return h.Sum(nil)
}
