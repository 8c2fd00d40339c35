package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"walletcore/internal/address"
	"walletcore/internal/domain"
)

// sign-message <label> <message|->
func signMessageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign-message <label> <message|->",
		Short: "Sign a message with an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassword(); err != nil {
				return err
			}
			msg, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			signed, err := wire.Messages.SignMessage(domain.AccountLabel(args[0]), password, msg)
			if err != nil {
				return err
			}
			sig, _ := signed.Signature()
			fmt.Fprintln(cmd.OutOrStdout(), sig.Hex())
			return nil
		},
	}
}

// verify-message <address> <message|-> <signature-hex>
func verifyMessageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-message <address> <message|-> <signature-hex>",
		Short: "Verify a message signature",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			ok, err := wire.Messages.VerifyMessage(args[0], msg, args[2])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("signature is not valid for %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

// sign-tx <label>: print the signed transaction as JSON.
func signTxCmd() *cobra.Command {
	var (
		tx       domain.Transaction
		receiver string
		data     string
	)
	cmd := &cobra.Command{
		Use:   "sign-tx <label>",
		Short: "Sign a transaction and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassword(); err != nil {
				return err
			}
			to, err := address.Parse(receiver, "")
			if err != nil {
				return err
			}
			tx.Receiver = to
			if data != "" {
				tx.Data = []byte(data)
			}
			if err := wire.Messages.SignTransaction(domain.AccountLabel(args[0]), password, &tx); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(&tx)
		},
	}
	f := cmd.Flags()
	f.StringVar(&receiver, "receiver", "", "receiver address")
	f.StringVar(&tx.Value, "value", "0", "value in the smallest denomination")
	f.Uint64Var(&tx.Nonce, "nonce", 0, "sender nonce")
	f.Uint64Var(&tx.GasPrice, "gas-price", 1000000000, "gas price")
	f.Uint64Var(&tx.GasLimit, "gas-limit", 50000, "gas limit")
	f.StringVar(&data, "data", "", "transaction data")
	f.StringVar(&tx.ChainID, "chain", "D", "chain id")
	f.Uint32Var(&tx.Version, "tx-version", 1, "transaction version")
	f.Uint32Var(&tx.Options, "options", 0, "transaction options")
	_ = cmd.MarkFlagRequired("receiver")
	return cmd
}
