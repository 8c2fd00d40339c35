package pubkeyenc

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"walletcore/internal/crypto"
)

// Envelope is the wire form of an encrypted payload. Binary fields are
// lowercase hex without prefix.
type Envelope struct {
	Version    int        `json:"version"`
	Nonce      string     `json:"nonce"`
	Cipher     string     `json:"cipher"`
	Ciphertext string     `json:"ciphertext"`
	MAC        string     `json:"mac"`
	Identities Identities `json:"identities"`
}

// Identities names the three keys involved in an envelope.
type Identities struct {
	Recipient        string `json:"recipient"`
	EphemeralPubKey  string `json:"ephemeralPubKey"`
	OriginatorPubKey string `json:"originatorPubKey"`
}

// decoded holds the binary form of a validated envelope.
type decoded struct {
	nonce      [NonceSize]byte
	ciphertext []byte
	mac        crypto.Signature
	recipient  crypto.PublicKey
	ephemeral  crypto.PublicKey
	originator crypto.PublicKey
}

// ParseEnvelope decodes JSON and validates the envelope shape.
func ParseEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if _, err := env.decode(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Marshal returns the JSON wire form.
func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Originator returns the sender's public key claimed by the envelope.
func (e *Envelope) Originator() (crypto.PublicKey, error) {
	pub, err := crypto.PublicKeyFromHex(e.Identities.OriginatorPubKey)
	if err != nil {
		return crypto.PublicKey{}, fmt.Errorf("%w: originatorPubKey: %v", ErrInvalidEnvelope, err)
	}
	return pub, nil
}

// Recipient returns the public key the envelope is addressed to.
func (e *Envelope) Recipient() (crypto.PublicKey, error) {
	pub, err := crypto.PublicKeyFromHex(e.Identities.Recipient)
	if err != nil {
		return crypto.PublicKey{}, fmt.Errorf("%w: recipient: %v", ErrInvalidEnvelope, err)
	}
	return pub, nil
}

// VerifyOrigin reports whether mac is the originator's signature over
// SHA-256(ciphertext || ephemeralPubKey). Any malformed field yields false.
func (e *Envelope) VerifyOrigin() bool {
	d, err := e.decode()
	if err != nil {
		return false
	}
	return d.verifyOrigin()
}

func (d *decoded) verifyOrigin() bool {
	hash := authHash(d.ciphertext, d.ephemeral)
	return d.originator.Verify(hash[:], d.mac[:])
}

// authHash is the message the originator signs.
func authHash(ciphertext []byte, ephemeral crypto.PublicKey) [sha256.Size]byte {
	h := sha256.New()
	h.Write(ciphertext)
	h.Write(ephemeral[:])
	var out [sha256.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (e *Envelope) decode() (*decoded, error) {
	if e.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, e.Version)
	}
	if e.Cipher != Cipher {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCipher, e.Cipher)
	}

	var d decoded
	nonce, err := crypto.DecodeHex(e.Nonce, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", ErrInvalidEnvelope, err)
	}
	copy(d.nonce[:], nonce)

	if len(e.Ciphertext) < 2*TagSize || len(e.Ciphertext)%2 != 0 {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrInvalidEnvelope)
	}
	if d.ciphertext, err = crypto.DecodeHex(e.Ciphertext, len(e.Ciphertext)/2); err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %v", ErrInvalidEnvelope, err)
	}

	if d.mac, err = crypto.SignatureFromHex(e.MAC); err != nil {
		return nil, fmt.Errorf("%w: mac: %v", ErrInvalidEnvelope, err)
	}
	if d.recipient, err = e.Recipient(); err != nil {
		return nil, err
	}
	if d.ephemeral, err = crypto.PublicKeyFromHex(e.Identities.EphemeralPubKey); err != nil {
		return nil, fmt.Errorf("%w: ephemeralPubKey: %v", ErrInvalidEnvelope, err)
	}
	if d.originator, err = e.Originator(); err != nil {
		return nil, err
	}
	return &d, nil
}
