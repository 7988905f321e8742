package cmd

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/docker/go-units"
	"github.com/spf13/viper"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/custody/notifications"
	"github.com/onflow/flow-crowdfund/module/clock"
	"github.com/onflow/flow-crowdfund/module/metrics"
	bstorage "github.com/onflow/flow-crowdfund/storage/badger"
)

// initDB opens the badger database in the configured data directory.
func initDB() (*badger.DB, error) {
	datadir := viper.GetString("datadir")
	opts, err := badgerOptions(datadir, viper.GetString("value-log-file-size"), viper.GetString("max-table-size"))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("datadir", datadir).
		Str("value_log_file_size", units.BytesSize(float64(opts.ValueLogFileSize))).
		Str("max_table_size", units.BytesSize(float64(opts.MaxTableSize))).
		Msg("opening database")

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("could not open database at %s: %w", datadir, err)
	}
	return db, nil
}

// badgerOptions builds the database options from human readable file sizes.
func badgerOptions(datadir string, valueLogFileSize string, maxTableSize string) (badger.Options, error) {
	vlogSize, err := units.RAMInBytes(valueLogFileSize)
	if err != nil {
		return badger.Options{}, fmt.Errorf("invalid value log file size %q: %w", valueLogFileSize, err)
	}
	tableSize, err := units.RAMInBytes(maxTableSize)
	if err != nil {
		return badger.Options{}, fmt.Errorf("invalid max table size %q: %w", maxTableSize, err)
	}

	return badger.
		DefaultOptions(datadir).
		WithKeepL0InMemory(true).
		WithValueLogFileSize(vlogSize).
		WithMaxTableSize(tableSize).
		WithLogger(nil), nil
}

func initLedger(db *badger.DB, options ...bstorage.LedgerOption) *bstorage.Ledger {
	options = append([]bstorage.LedgerOption{
		bstorage.WithCacheSize(viper.GetUint("cache-size")),
		bstorage.WithConflictTimeout(viper.GetDuration("conflict-timeout")),
	}, options...)
	return bstorage.NewLedger(db, options...)
}

// initOfflineEngine builds an engine for one-shot commands. Notifications are
// only logged and no metrics are collected.
func initOfflineEngine(db *badger.DB) *custody.Engine {
	return custody.New(
		log,
		metrics.NewNoopCollector(),
		initLedger(db),
		clock.NewSystem(),
		notifications.NewLogConsumer(log),
	)
}
