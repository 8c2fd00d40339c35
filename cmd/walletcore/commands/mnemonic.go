package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"walletcore/internal/mnemonic"
)

func mnemonicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate or validate BIP-39 phrases",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "new",
			Short: "Print a new 24-word phrase without storing it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := mnemonic.Generate()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), m.String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "check <words...>",
			Short: "Validate a phrase",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := mnemonic.Validate(joinWords(args)); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			},
		},
	)
	return cmd
}

// derive <index...>: print addresses derived from a phrase.
func deriveCmd() *cobra.Command {
	var words, passphrase string
	cmd := &cobra.Command{
		Use:   "derive <index...>",
		Short: "Print the address and public key of derived accounts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mnemonic.FromString(words)
			if err != nil {
				return err
			}
			for _, arg := range args {
				index, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("index %q: %w", arg, err)
				}
				sk, err := m.DeriveKey(index, passphrase)
				if err != nil {
					return err
				}
				pub := sk.PublicKey()
				sk.Wipe()
				addr, err := pub.ToAddress(wire.Config.HRP)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", index, mnemonic.AccountPath(index), addr.Bech32(), pub.Hex())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&words, "mnemonic", "", "phrase to derive from")
	cmd.Flags().StringVar(&passphrase, "bip39-passphrase", "", "optional BIP-39 passphrase")
	_ = cmd.MarkFlagRequired("mnemonic")
	return cmd
}
