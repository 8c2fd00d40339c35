package store

import (
	"walletcore/internal/crypto"
	"walletcore/internal/domain"
)

// KeystoreSource yields the secret key held in a secretKey keystore.
type KeystoreSource struct {
	File     domain.KeystoreFile
	Password string
}

// SecretKey decrypts the keystore.
func (s KeystoreSource) SecretKey() (crypto.SecretKey, error) {
	return DecryptSecretKey(s.File, s.Password)
}

// PEMSource yields the secret key of one block of PEM text.
type PEMSource struct {
	Text  []byte
	Index int
}

// SecretKey parses the selected block.
func (s PEMSource) SecretKey() (crypto.SecretKey, error) {
	return ParsePEM(s.Text, s.Index)
}
