package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "CROWDFUND"

var (
	flagConfigFile string
	log            zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "crowdfund",
	Short: "Milestone gated crowdfunding custody service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	SilenceUsage: true,
}

var RootCmd = rootCmd

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "path to a config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("datadir", "crowdfund-data", "directory of the badger database")
	rootCmd.PersistentFlags().String("loglevel", "info", "level for logging output")
	rootCmd.PersistentFlags().Uint("cache-size", 1000, "number of campaigns cached in memory")
	rootCmd.PersistentFlags().Duration("conflict-timeout", 10*time.Second, "for how long a conflicting transaction is retried")
	rootCmd.PersistentFlags().String("value-log-file-size", "256MiB", "size of each badger value log file, e.g. 64MiB or 1GiB")
	rootCmd.PersistentFlags().String("max-table-size", "64MiB", "size of each badger table file")
	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	log = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if flagConfigFile == "" {
		return
	}
	viper.SetConfigFile(flagConfigFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "could not read config file %s: %v\n", flagConfigFile, err)
		os.Exit(1)
	}
}

// initLogger sets up the process wide logger with the configured level and
// UTC timestamps.
func initLogger() error {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("loglevel")))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", viper.GetString("loglevel"), err)
	}
	log = log.Level(lvl)
	zerolog.SetGlobalLevel(lvl)
	return nil
}
