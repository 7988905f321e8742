package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onflow/flow-crowdfund/cmd/build"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version of this build",
	Run: func(cmd *cobra.Command, args []string) {
		semver := build.Semver()
		if semver == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", build.Version())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", semver.String())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "commit:  %s\n", build.Commit())
	},
}
