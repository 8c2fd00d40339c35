package interfaces

import (
	"walletcore/internal/crypto"
	domaintypes "walletcore/internal/domain/types"
	"walletcore/internal/protocol/pubkeyenc"
	"walletcore/internal/signer"
)

// IdentityService manages mnemonics, derived accounts and their keystores.
type IdentityService interface {
	CreateMnemonic(password string, label domaintypes.AccountLabel) (string, domaintypes.Account, error)
	ImportMnemonic(phrase, password string, label domaintypes.AccountLabel) (domaintypes.Account, error)
	DeriveAccount(password string, label domaintypes.AccountLabel, index int) (domaintypes.Account, error)
	GenerateAccount(password string, label domaintypes.AccountLabel) (domaintypes.Account, error)
	ImportPEM(text []byte, index int, password string, label domaintypes.AccountLabel) (domaintypes.Account, error)
	ExportPEM(label domaintypes.AccountLabel, password string) ([]byte, error)
	LoadSecretKey(label domaintypes.AccountLabel, password string) (crypto.SecretKey, error)
	LoadSigner(label domaintypes.AccountLabel, password string) (*signer.Signer, error)
	ListAccounts() ([]domaintypes.Account, error)
}

// MessageService encrypts, decrypts and signs payloads for local accounts.
type MessageService interface {
	Seal(label domaintypes.AccountLabel, password, recipient string, plaintext []byte) (*pubkeyenc.Envelope, error)
	Open(label domaintypes.AccountLabel, password string, envelope *pubkeyenc.Envelope) (domaintypes.DecryptedMessage, error)
	SignMessage(label domaintypes.AccountLabel, password string, message []byte) (*domaintypes.SignableMessage, error)
	VerifyMessage(addr string, message []byte, signatureHex string) (bool, error)
	SignTransaction(label domaintypes.AccountLabel, password string, tx *domaintypes.Transaction) error
}
