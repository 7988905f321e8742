package cmd

import (
	"github.com/spf13/cobra"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

var (
	flagAuthority     string
	flagDisputeWindow int64
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().StringVar(&flagAuthority, "authority", "", "hex identity of the system authority")
	configInitCmd.Flags().Int64Var(&flagDisputeWindow, "dispute-window", 0, "seconds between two milestone releases")
	_ = configInitCmd.MarkFlagRequired("authority")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "manage the system configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "initialize the system configuration of a stopped node",
	RunE: func(cmd *cobra.Command, args []string) error {
		authority, err := crowdfund.HexStringToIdentifier(flagAuthority)
		if err != nil {
			log.Error().Err(err).Msg("malformed authority identifier")
			return err
		}

		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		err = initOfflineEngine(db).Initialize(cmd.Context(), authority, flagDisputeWindow)
		if err != nil {
			return err
		}
		log.Info().
			Str("authority", authority.String()).
			Int64("dispute_window", flagDisputeWindow).
			Msg("system configuration initialized")
		return nil
	},
}
