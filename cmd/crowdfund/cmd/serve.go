package cmd

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/onflow/flow-crowdfund/cmd/build"
	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/custody/notifications"
	"github.com/onflow/flow-crowdfund/custody/notifications/pubsub"
	"github.com/onflow/flow-crowdfund/engine/api/rest"
	"github.com/onflow/flow-crowdfund/module/clock"
	"github.com/onflow/flow-crowdfund/module/metrics"
	"github.com/onflow/flow-crowdfund/module/signature"
	bstorage "github.com/onflow/flow-crowdfund/storage/badger"
)

const shutdownTimeout = 10 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("rest-addr", ":8070", "address the REST API listens on")
	serveCmd.Flags().Uint("metrics-port", 8080, "port of the prometheus metrics server")
	serveCmd.Flags().Bool("profiler", false, "expose pprof endpoints on the metrics server")
	serveCmd.Flags().StringSlice("cors-origins", []string{"*"}, "origins allowed to call the REST API")
	_ = viper.BindPFlags(serveCmd.Flags())
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the custody engine behind the REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) (err error) {
	log.Info().
		Str("version", build.Version()).
		Str("commit", build.Commit()).
		Msg("starting crowdfund node")

	db, err := initDB()
	if err != nil {
		return err
	}
	defer func() {
		closeErr := db.Close()
		if closeErr != nil {
			err = multierror.Append(err, fmt.Errorf("could not close database: %w", closeErr))
		}
	}()

	registerer := prometheus.DefaultRegisterer
	ledger := initLedger(db,
		bstorage.WithCacheMetrics(metrics.NewCacheCollector(registerer)),
		bstorage.WithStorageMetrics(metrics.NewStorageCollector(registerer)),
	)

	distributor := pubsub.NewDistributor()
	distributor.AddConsumer(notifications.NewLogConsumer(log))
	distributor.AddConsumer(notifications.NewTelemetryConsumer(log))

	engine := custody.New(
		log,
		metrics.NewCustodyCollector(registerer),
		ledger,
		clock.NewSystem(),
		distributor,
	)

	server, err := rest.NewServer(
		engine,
		rest.Config{
			ListenAddress:  viper.GetString("rest-addr"),
			AllowedOrigins: viper.GetStringSlice("cors-origins"),
		},
		log,
		signature.NewSchnorrVerifier(),
		metrics.NewRestCollector(registerer),
	)
	if err != nil {
		return fmt.Errorf("could not create REST server: %w", err)
	}

	metricsServer := metrics.NewServer(log, viper.GetUint("metrics-port"), prometheus.DefaultGatherer, viper.GetBool("profiler"))
	<-metricsServer.Ready()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info().Str("address", server.Addr).Msg("starting REST server")
		err := server.ListenAndServe()
		if err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("REST server failed: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		var result *multierror.Error
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			result = multierror.Append(result, fmt.Errorf("could not shut down REST server: %w", err))
		}
		<-metricsServer.Done()
		return result.ErrorOrNil()
	})

	return group.Wait()
}
