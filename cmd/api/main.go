package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/kurihiro0119/codespaces-dashboard/internal/aggregator"
	"github.com/kurihiro0119/codespaces-dashboard/internal/api"
	"github.com/kurihiro0119/codespaces-dashboard/internal/collector"
	"github.com/kurihiro0119/codespaces-dashboard/internal/config"
	"github.com/kurihiro0119/codespaces-dashboard/internal/storage/memory"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard-api",
		Short: "Serve the developer activity dashboard",
		Long: `Generate a sample activity series and serve the dashboard page and its
JSON API until interrupted. Flags override dashboard.yaml and DASHBOARD_*
environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			if !cfg.Debug {
				gin.SetMode(gin.ReleaseMode)
			}

			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "config file (default is ./dashboard.yaml if present)")
	flags.String("host", "0.0.0.0", "address to bind")
	flags.Int("port", 5000, "port to listen on")
	flags.Bool("debug", true, "run gin in debug mode")

	return cmd
}

// loadConfig loads and validates the configuration, letting any flag set on
// the command line override its key
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	configFile, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Failed to run server: %v\n", err)
		os.Exit(1)
	}
	stop()
}

func run(ctx context.Context, cfg *config.Config) error {
	// Generate the sample series once; it is read-only from here on
	coll := collector.NewSampleCollector(
		collector.WithSeed(cfg.SampleSeed),
		collector.WithDistribution(collector.Distribution(cfg.Distribution)),
	)
	store, err := memory.NewFromCollector(ctx, coll, time.Now(), cfg.SampleDays)
	if err != nil {
		return err
	}
	defer store.Close()

	agg := aggregator.NewAggregator(store, cfg.HourlyRate)
	handler := api.NewHandler(agg, api.Site{
		Environment:  cfg.Environment,
		Organization: cfg.Organization,
	})

	router, err := api.SetupRoutes(handler)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	info := store.Info()
	log.Printf("Starting API server on %s", cfg.Addr())
	log.Printf("Dataset %s: %d days (%s to %s), distribution %s", info.ID, info.Days, info.Start, info.End, cfg.Distribution)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
