package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/util"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

var (
	flagCampaignID string
	flagCreator    string
	flagStatus     string
	flagDonor      string
)

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.AddCommand(readCampaignsCmd, readReceiptsCmd, readEventsCmd)

	readCampaignsCmd.Flags().StringVarP(&flagCampaignID, "id", "i", "", "the identifier of the campaign")
	readCampaignsCmd.Flags().StringVar(&flagCreator, "creator", "", "only list campaigns of this creator")
	readCampaignsCmd.Flags().StringVar(&flagStatus, "status", "", "only list campaigns with this status")

	readReceiptsCmd.Flags().StringVarP(&flagDonor, "donor", "d", "", "the identity of the donor")
	_ = readReceiptsCmd.MarkFlagRequired("donor")

	readEventsCmd.Flags().StringVarP(&flagCampaignID, "id", "i", "", "the identifier of the campaign")
	_ = readEventsCmd.MarkFlagRequired("id")
}

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "inspect the database of a stopped node",
}

var readCampaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "get a campaign by ID or list campaigns",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closeDB, err := openEngine()
		if err != nil {
			return err
		}
		defer closeDB()
		ctx := cmd.Context()

		if flagCampaignID != "" {
			campaignID, err := crowdfund.HexStringToIdentifier(flagCampaignID)
			if err != nil {
				return fmt.Errorf("malformed campaign identifier: %w", err)
			}
			campaign, err := engine.Campaign(ctx, campaignID)
			if err != nil {
				return fmt.Errorf("could not get campaign: %w", err)
			}
			balance, err := engine.VaultBalance(ctx, campaignID)
			if err != nil {
				return fmt.Errorf("could not get vault balance: %w", err)
			}
			var response models.Campaign
			response.Build(campaign, engine.Now())
			response.VaultBalance = util.FromUint64(balance)
			return prettyPrint(cmd.OutOrStdout(), response)
		}

		var filter custody.CampaignFilter
		if flagCreator != "" {
			creator, err := crowdfund.HexStringToIdentifier(flagCreator)
			if err != nil {
				return fmt.Errorf("malformed creator identifier: %w", err)
			}
			filter.Creator = &creator
		}
		if flagStatus != "" {
			status, err := crowdfund.ParseCampaignStatus(flagStatus)
			if err != nil {
				return err
			}
			filter.Status = &status
		}
		campaigns, err := engine.Campaigns(ctx, filter)
		if err != nil {
			return fmt.Errorf("could not list campaigns: %w", err)
		}
		var response models.Campaigns
		response.Build(campaigns, engine.Now())
		return prettyPrint(cmd.OutOrStdout(), response)
	},
}

var readReceiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "list the donation receipts of a donor",
	RunE: func(cmd *cobra.Command, args []string) error {
		donor, err := crowdfund.HexStringToIdentifier(flagDonor)
		if err != nil {
			return fmt.Errorf("malformed donor identifier: %w", err)
		}
		engine, closeDB, err := openEngine()
		if err != nil {
			return err
		}
		defer closeDB()

		receipts, err := engine.ReceiptsByDonor(cmd.Context(), donor)
		if err != nil {
			return fmt.Errorf("could not get receipts: %w", err)
		}
		var response models.Receipts
		response.Build(receipts)
		return prettyPrint(cmd.OutOrStdout(), response)
	},
}

var readEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "print the event journal of a campaign",
	RunE: func(cmd *cobra.Command, args []string) error {
		campaignID, err := crowdfund.HexStringToIdentifier(flagCampaignID)
		if err != nil {
			return fmt.Errorf("malformed campaign identifier: %w", err)
		}
		engine, closeDB, err := openEngine()
		if err != nil {
			return err
		}
		defer closeDB()

		events, err := engine.CampaignEvents(cmd.Context(), campaignID)
		if err != nil {
			return fmt.Errorf("could not get events: %w", err)
		}
		var response models.Events
		response.Build(events)
		return prettyPrint(cmd.OutOrStdout(), response)
	},
}

func openEngine() (*custody.Engine, func(), error) {
	db, err := initDB()
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("could not close database")
		}
	}
	return initOfflineEngine(db), closeDB, nil
}

func prettyPrint(w io.Writer, entity interface{}) error {
	bytes, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}
