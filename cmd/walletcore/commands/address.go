package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"walletcore/internal/address"
	"walletcore/internal/crypto"
)

func addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address <pubkey-hex|bech32>",
		Short: "Print the hex and bech32 forms of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := address.Parse(args[0], "")
			if err != nil {
				return err
			}
			pub, err := crypto.PublicKeyFromBytes(a.PubKey())
			if err != nil {
				return err
			}
			addr, err := pub.ToAddress(wire.Config.HRP)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bech32:      %s\n", addr.Bech32())
			fmt.Fprintf(out, "Hex:         %s\n", addr.Hex())
			fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(pub))
			return nil
		},
	}
}
