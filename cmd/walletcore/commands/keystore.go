package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"walletcore/internal/domain"
	"walletcore/internal/store"
)

func keystoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keystore",
		Short: "Manage password-protected keystores",
	}
	cmd.AddCommand(keystoreNewCmd(), keystoreImportCmd(), keystoreDeriveCmd(), keystoreExportPEMCmd())
	return cmd
}

func keystoreNewCmd() *cobra.Command {
	var label string
	var random bool
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a mnemonic wallet, or a single random key with --random",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassword(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if random {
				acc, err := wire.Identity.GenerateAccount(password, domain.AccountLabel(label))
				if err != nil {
					return err
				}
				printAccount(cmd, acc)
				return nil
			}
			phrase, acc, err := wire.Identity.CreateMnemonic(password, domain.AccountLabel(label))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Mnemonic (write it down, it is shown once):\n%s\n\n", phrase)
			printAccount(cmd, acc)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "account label (default: address)")
	cmd.Flags().BoolVar(&random, "random", false, "create a random key instead of a mnemonic")
	return cmd
}

func keystoreImportCmd() *cobra.Command {
	var label, words, pemPath string
	var index int
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a mnemonic (--mnemonic) or a PEM key (--pem)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassword(); err != nil {
				return err
			}
			var (
				acc domain.Account
				err error
			)
			switch {
			case words != "" && pemPath != "":
				return fmt.Errorf("use either --mnemonic or --pem")
			case words != "":
				acc, err = wire.Identity.ImportMnemonic(words, password, domain.AccountLabel(label))
			case pemPath != "":
				var text []byte
				if text, err = readFileOrStdin(cmd, pemPath); err != nil {
					return err
				}
				acc, err = wire.Identity.ImportPEM(text, index, password, domain.AccountLabel(label))
			default:
				return fmt.Errorf("--mnemonic or --pem required")
			}
			if err != nil {
				return err
			}
			printAccount(cmd, acc)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "account label (default: address)")
	cmd.Flags().StringVar(&words, "mnemonic", "", "phrase to import")
	cmd.Flags().StringVar(&pemPath, "pem", "", "PEM file to import (- for stdin)")
	cmd.Flags().IntVar(&index, "index", 0, "PEM block to import")
	return cmd
}

func keystoreDeriveCmd() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "derive <index>",
		Short: "Save the account at index from the stored mnemonic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassword(); err != nil {
				return err
			}
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[0], err)
			}
			acc, err := wire.Identity.DeriveAccount(password, domain.AccountLabel(label), index)
			if err != nil {
				return err
			}
			printAccount(cmd, acc)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "account label (default: address)")
	return cmd
}

func keystoreExportPEMCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export-pem <label>",
		Short: "Export an account key as PEM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassword(); err != nil {
				return err
			}
			text, err := wire.Identity.ExportPEM(domain.AccountLabel(args[0]), password)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(text)
				return err
			}
			if err := store.WriteSecretFile(outPath, text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file (mode 0600) instead of stdout")
	return cmd
}

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List stored accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := wire.Identity.ListAccounts()
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no accounts in", wire.Config.Home)
				return nil
			}
			for _, a := range accounts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", a.Label, a.Address, a.Source, a.Index)
			}
			return nil
		},
	}
}

func printAccount(cmd *cobra.Command, acc domain.Account) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Label:      %s\n", acc.Label)
	fmt.Fprintf(out, "Address:    %s\n", acc.Address)
	fmt.Fprintf(out, "Public key: %s\n", acc.PublicKey)
	fmt.Fprintf(out, "Keystore:   %s\n", acc.Keystore)
}
