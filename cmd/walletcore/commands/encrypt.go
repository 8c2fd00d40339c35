package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"walletcore/internal/domain"
	"walletcore/internal/protocol/pubkeyenc"
)

// encrypt <label> <recipient> <message|->: print the envelope JSON.
func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <label> <recipient> <message|->",
		Short: "Encrypt a payload from an account to a recipient address",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassword(); err != nil {
				return err
			}
			msg, err := readInput(cmd, args[2])
			if err != nil {
				return err
			}
			env, err := wire.Messages.Seal(domain.AccountLabel(args[0]), password, args[1], msg)
			if err != nil {
				return err
			}
			b, err := env.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

// decrypt <label> <envelope-file|->: print the plaintext.
func decryptCmd() *cobra.Command {
	var showSender bool
	cmd := &cobra.Command{
		Use:   "decrypt <label> <envelope-file|->",
		Short: "Decrypt an envelope addressed to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassword(); err != nil {
				return err
			}
			raw, err := readFileOrStdin(cmd, args[1])
			if err != nil {
				return err
			}
			env, err := pubkeyenc.ParseEnvelope(raw)
			if err != nil {
				return err
			}
			msg, err := wire.Messages.Open(domain.AccountLabel(args[0]), password, env)
			if err != nil {
				return err
			}
			if showSender {
				fmt.Fprintf(cmd.ErrOrStderr(), "from %s\n", msg.From)
			}
			_, err = cmd.OutOrStdout().Write(msg.Plaintext)
			return err
		},
	}
	cmd.Flags().BoolVar(&showSender, "show-sender", false, "print the originator address to stderr")
	return cmd
}
