package store

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"walletcore/internal/address"
	"walletcore/internal/crypto"
	"walletcore/internal/util/memzero"
)

const pemTypePrefix = "PRIVATE KEY for "

// ErrInvalidPEM is returned for PEM text without usable private key blocks.
var ErrInvalidPEM = errors.New("invalid PEM")

// PEMKey is one decoded private key block.
type PEMKey struct {
	Label  string
	Secret crypto.SecretKey
}

// ParseAllPEM decodes every private key block in text, in order.
func ParseAllPEM(text []byte) ([]PEMKey, error) {
	var keys []PEMKey
	rest := bytes.TrimSpace(text)
	for len(rest) > 0 {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		key, err := decodeBlock(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", len(keys), err)
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no private key blocks", ErrInvalidPEM)
	}
	return keys, nil
}

// ParsePEM returns the secret key of the block at index.
func ParsePEM(text []byte, index int) (crypto.SecretKey, error) {
	keys, err := ParseAllPEM(text)
	if err != nil {
		return crypto.SecretKey{}, err
	}
	if index < 0 || index >= len(keys) {
		return crypto.SecretKey{}, fmt.Errorf("%w: index %d out of %d blocks", ErrInvalidPEM, index, len(keys))
	}
	return keys[index].Secret, nil
}

// EncodePEM renders secret as a private key block labelled with its address.
func EncodePEM(secret crypto.SecretKey, hrp string) ([]byte, error) {
	pub := secret.PublicKey()
	addr, err := pub.ToAddress(hrp)
	if err != nil {
		return nil, err
	}

	raw := append(secret.Bytes(), pub.Slice()...)
	defer memzero.Zero(raw)
	hexed := []byte(hex.EncodeToString(raw))
	defer memzero.Zero(hexed)

	body := make([]byte, base64.StdEncoding.EncodedLen(len(hexed)))
	base64.StdEncoding.Encode(body, hexed)
	defer memzero.Zero(body)

	// pem.Encode would base64 the bytes again, so lay out the block by hand.
	var b strings.Builder
	b.WriteString("-----BEGIN " + pemTypePrefix + addr.Bech32() + "-----\n")
	for len(body) > 64 {
		b.Write(body[:64])
		b.WriteByte('\n')
		body = body[64:]
	}
	b.Write(body)
	b.WriteString("\n-----END " + pemTypePrefix + addr.Bech32() + "-----\n")
	return []byte(b.String()), nil
}

func decodeBlock(block *pem.Block) (PEMKey, error) {
	if !strings.HasPrefix(block.Type, pemTypePrefix) {
		return PEMKey{}, fmt.Errorf("%w: unexpected block type %q", ErrInvalidPEM, block.Type)
	}
	label := strings.TrimPrefix(block.Type, pemTypePrefix)

	// pem.Decode has already removed one base64 layer; what is left is hex.
	raw, err := hex.DecodeString(string(block.Bytes))
	if err != nil {
		return PEMKey{}, fmt.Errorf("%w: body is not hex", ErrInvalidPEM)
	}
	defer memzero.Zero(raw)

	var seed []byte
	switch len(raw) {
	case crypto.SeedSize:
		seed = raw
	case crypto.SeedSize + crypto.PublicKeySize:
		seed = raw[:crypto.SeedSize]
	default:
		return PEMKey{}, fmt.Errorf("%w: key body is %d bytes", ErrInvalidPEM, len(raw))
	}
	secret, err := crypto.SecretKeyFromBytes(seed)
	if err != nil {
		return PEMKey{}, err
	}
	if len(raw) > crypto.SeedSize {
		pub := secret.PublicKey()
		if !bytes.Equal(pub.Slice(), raw[crypto.SeedSize:]) {
			secret.Wipe()
			return PEMKey{}, fmt.Errorf("%w: public key does not match secret key", ErrInvalidPEM)
		}
	}
	if a, err := address.FromBech32(label, ""); err == nil {
		if !bytes.Equal(a.PubKey(), secret.PublicKey().Slice()) {
			secret.Wipe()
			return PEMKey{}, fmt.Errorf("%w: label %s does not match key", ErrInvalidPEM, label)
		}
	}
	return PEMKey{Label: label, Secret: secret}, nil
}
