package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kurihiro0119/codespaces-dashboard/internal/config"
	"github.com/kurihiro0119/codespaces-dashboard/pkg/client"
)

// options holds the persistent flags shared by every command
type options struct {
	configFile string
	endpoint   string
	outputJSON bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Developer activity dashboard tool",
		Long: `A CLI tool for inspecting the developer activity dashboard.

It queries a running dashboard server for summary statistics, weekly trends,
the daily series and governance figures, or generates a sample dataset locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./dashboard.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "API endpoint (default from client.endpoint)")
	rootCmd.PersistentFlags().BoolVar(&opts.outputJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newHealthCmd(opts))
	rootCmd.AddCommand(newGenerateCmd(opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration; flags set on the command line and known
// to config.Load override their keys
func loadConfig(opts *options, flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newClient(opts *options) (*client.Client, error) {
	if opts.endpoint != "" {
		return client.NewClient(opts.endpoint), nil
	}
	cfg, err := loadConfig(opts, nil)
	if err != nil {
		return nil, err
	}
	return client.NewClient(cfg.APIEndpoint), nil
}
