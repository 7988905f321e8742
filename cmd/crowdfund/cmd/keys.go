package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onflow/flow-crowdfund/module/signature"
)

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysGenerateCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "manage signing keys",
}

var keysGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate a schnorr key pair and print its identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		signer, err := signature.GenerateSigner()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "identity:    %s\n", signer.Identity())
		fmt.Fprintf(cmd.OutOrStdout(), "private key: %s\n", signer.PrivateKeyHex())
		return nil
	},
}
