package interfaces

import domaintypes "walletcore/internal/domain/types"

// WalletStore persists password-protected keystore files.
type WalletStore interface {
	// SaveKeystore writes file under name and returns the path written.
	SaveKeystore(name string, file domaintypes.KeystoreFile) (string, error)
	LoadKeystore(name string) (domaintypes.KeystoreFile, error)
	ListKeystores() ([]string, error)
}

// AccountStore keeps the local index of accounts.
type AccountStore interface {
	SaveAccount(account domaintypes.Account) error
	LoadAccount(label domaintypes.AccountLabel) (domaintypes.Account, bool, error)
	ListAccounts() ([]domaintypes.Account, error)
}
