// Package cli wires configuration, the weather service and its collaborators into commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katiamach/pogoda/internal/api"
	"github.com/katiamach/pogoda/internal/client"
	"github.com/katiamach/pogoda/internal/config"
	"github.com/katiamach/pogoda/internal/logger"
	"github.com/katiamach/pogoda/internal/service"
	"github.com/katiamach/pogoda/internal/view"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersionInfo sets build information printed by the version command.
func SetVersionInfo(v, c string) {
	version = v
	commit = c
}

// NewRootCmd creates pogoda command tree.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pogoda",
		Short:         "Current weather in Polish",
		Long:          "pogoda fetches current weather from OpenWeatherMap, retrying transient failures, and prints it in Polish.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file (default $"+config.EnvConfigPath+")")

	root.AddCommand(
		newServeCmd(&configPath),
		newFetchCmd(&configPath),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error(err)
		stop()
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pogoda %s (commit: %s)\n", version, commit)
		},
	}
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run weather HTTP api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			if err := api.RunAPI(cmd.Context(), newService(cfg), cfg); err != nil {
				return fmt.Errorf("failed to run weather api: %w", err)
			}

			return nil
		},
	}
}

func newFetchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <city>",
		Short: "Print current weather for a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			return fetch(cmd.Context(), cmd.OutOrStdout(), newService(cfg), cfg.APIKey, args[0])
		},
	}
}

func fetch(ctx context.Context, out io.Writer, svc *service.WeatherService, apiKey, city string) error {
	fetcher := service.NewFetcher(svc, apiKey)
	defer fetcher.Stop()

	task, err := fetcher.Start(ctx, city)
	if err != nil {
		return err
	}

	outcome := task.Wait()
	for _, line := range view.Lines(outcome) {
		fmt.Fprintln(out, line)
	}

	if !outcome.OK() {
		return fmt.Errorf("weather fetch failed: %s", outcome.Failure.Kind)
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}

func newService(cfg *config.Config) *service.WeatherService {
	return service.New(client.New(cfg.ClientConfig()), service.WithRetryConfig(cfg.Retry))
}
