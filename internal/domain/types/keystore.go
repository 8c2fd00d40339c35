package types

// Keystore kinds.
const (
	KeystoreKindSecretKey = "secretKey"
	KeystoreKindMnemonic  = "mnemonic"
)

// KeystoreFile is the JSON schema of a password-protected wallet file.
type KeystoreFile struct {
	Version int            `json:"version"`
	Kind    string         `json:"kind"`
	ID      string         `json:"id"`
	Address string         `json:"address,omitempty"`
	Bech32  string         `json:"bech32,omitempty"`
	Crypto  KeystoreCrypto `json:"crypto"`
}

// KeystoreCrypto holds the sealed payload and its KDF/cipher parameters.
type KeystoreCrypto struct {
	Ciphertext   string               `json:"ciphertext"`
	CipherParams KeystoreCipherParams `json:"cipherparams"`
	Cipher       string               `json:"cipher"`
	KDF          string               `json:"kdf"`
	KDFParams    KeystoreKDFParams    `json:"kdfparams"`
	MAC          string               `json:"mac"`
}

// KeystoreCipherParams carries the cipher IV.
type KeystoreCipherParams struct {
	IV string `json:"iv"`
}

// KeystoreKDFParams are the scrypt parameters.
type KeystoreKDFParams struct {
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
}
