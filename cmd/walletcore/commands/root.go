package commands

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"walletcore/internal/app"
)

var (
	home       string
	configPath string
	password   string
	hrp        string
	logLevel   string
	wire       *app.Wire
)

// errPasswordRequired is returned by commands that unlock a keystore.
var errPasswordRequired = errors.New("password required (-p)")

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "walletcore",
		Short:         "Ed25519 wallet keys, signing and encryption",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath, home)
			if err != nil {
				return err
			}
			if hrp != "" {
				cfg.HRP = hrp
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			wire, err = app.NewWire(cfg, cmd.ErrOrStderr())
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "wallet dir (default ~/.walletcore)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "password protecting keystores")
	root.PersistentFlags().StringVar(&hrp, "hrp", "", "bech32 address prefix (default erd)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		mnemonicCmd(),
		deriveCmd(),
		keystoreCmd(),
		accountsCmd(),
		addressCmd(),
		signMessageCmd(),
		verifyMessageCmd(),
		signTxCmd(),
		encryptCmd(),
		decryptCmd(),
	)
	return root
}

func requirePassword() error {
	if password == "" {
		return errPasswordRequired
	}
	return nil
}

// readInput returns arg, or stdin when arg is "-".
func readInput(cmd *cobra.Command, arg string) ([]byte, error) {
	if arg != "-" {
		return []byte(arg), nil
	}
	return io.ReadAll(cmd.InOrStdin())
}

// readFileOrStdin reads path, or stdin when path is "-".
func readFileOrStdin(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func joinWords(args []string) string { return strings.Join(args, " ") }
