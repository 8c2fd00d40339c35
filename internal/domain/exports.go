package domain

import (
	interfaces "walletcore/internal/domain/interfaces"
	types "walletcore/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	AccountLabel         = types.AccountLabel
	KeySource            = types.KeySource
	Account              = types.Account
	KeystoreFile         = types.KeystoreFile
	KeystoreCrypto       = types.KeystoreCrypto
	KeystoreCipherParams = types.KeystoreCipherParams
	KeystoreKDFParams    = types.KeystoreKDFParams
	Transaction          = types.Transaction
	SignableMessage      = types.SignableMessage
	DecryptedMessage     = types.DecryptedMessage
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService = interfaces.IdentityService
	MessageService  = interfaces.MessageService
	WalletStore     = interfaces.WalletStore
	AccountStore    = interfaces.AccountStore
)

// Constants re-exported from the types subpackage.
const (
	SourceMnemonic = types.SourceMnemonic
	SourceKeystore = types.SourceKeystore
	SourcePEM      = types.SourcePEM

	KeystoreKindSecretKey = types.KeystoreKindSecretKey
	KeystoreKindMnemonic  = types.KeystoreKindMnemonic
)

// NewSignableMessage wraps message for signing.
func NewSignableMessage(message []byte) *SignableMessage {
	return types.NewSignableMessage(message)
}
