package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"walletcore/internal/domain"
	"walletcore/internal/protocol/pubkeyenc"
	identitysvc "walletcore/internal/services/identity"
	messagesvc "walletcore/internal/services/message"
	"walletcore/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Config   Config
	Logger   *slog.Logger
	Wallets  domain.WalletStore
	Accounts domain.AccountStore
	Identity domain.IdentityService
	Messages domain.MessageService
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home: %w", err)
	}
	logger, err := NewLogger(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	// File-based stores
	walletStore := store.NewWalletFileStore(cfg.Home)
	accountStore := store.NewAccountFileStore(cfg.Home)

	// High-level services
	identitySvc := identitysvc.New(walletStore, accountStore,
		identitysvc.WithLogger(logger),
		identitysvc.WithHRP(cfg.HRP),
		identitysvc.WithCodec(store.NewKeystoreCodec(cfg.Keystore)),
	)
	messageSvc := messagesvc.New(identitySvc,
		messagesvc.WithLogger(logger),
		messagesvc.WithHRP(cfg.HRP),
		messagesvc.WithEncryptor(pubkeyenc.NewEncryptor()),
	)

	return &Wire{
		Config:   cfg,
		Logger:   logger,
		Wallets:  walletStore,
		Accounts: accountStore,
		Identity: identitySvc,
		Messages: messageSvc,
	}, nil
}
