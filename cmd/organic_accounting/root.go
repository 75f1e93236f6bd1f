package main

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/SscSPs/organic_store_accounting/internal/adapters/ledgerapi"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
	"github.com/SscSPs/organic_store_accounting/internal/core/services"
	"github.com/SscSPs/organic_store_accounting/internal/platform/config"
	"github.com/SscSPs/organic_store_accounting/internal/repositories/database/pgsql"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "organic_accounting",
	Short:         "Accounting views for the organic produce store",
	Long:          "Classifies ledger journal entries into income and expense, summarizes them and ages open receivables. Runs as an HTTP API or prints the views directly.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(flagLogLevel)); err != nil {
			return err
		}
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLedgerClient builds the remote ledger API adapter from configuration.
func newLedgerClient() *ledgerapi.Client {
	return ledgerapi.New(cfg.LedgerAPIBaseURL,
		ledgerapi.WithToken(cfg.LedgerAPIToken),
		ledgerapi.WithTimeout(cfg.LedgerAPITimeout),
	)
}

// newServices wires the service layer. dbPool may be nil when no database is configured.
func newServices(dbPool *pgxpool.Pool) *portssvc.ServiceContainer {
	return services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool, newLedgerClient()))
}
