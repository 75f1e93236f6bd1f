package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spf13/cobra"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	"github.com/SscSPs/organic_store_accounting/internal/core/services"
	"github.com/SscSPs/organic_store_accounting/internal/dto"
	"github.com/SscSPs/organic_store_accounting/pkg/database"
)

var (
	flagLimit     int
	flagNextToken string
	flagAsOf      string
	flagDetail    bool
	flagEntryFile string
	flagUser      string
	flagReference string
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List classified transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := portsrepo.ListEntriesParams{Limit: flagLimit}
		if flagNextToken != "" {
			params.NextToken = &flagNextToken
		}

		page, err := newServices(nil).LedgerView.ListTransactions(cmd.Context(), params)
		if err != nil {
			return err
		}

		printTransactions(cmd.OutOrStdout(), page)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show total income, total expense and balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newServices(nil).LedgerView.Statistics(cmd.Context())
		if err != nil {
			return err
		}

		printStatistics(cmd.OutOrStdout(), stats)
		return nil
	},
}

var agingCmd = &cobra.Command{
	Use:   "aging",
	Short: "Show receivables aging",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newServices(nil).Aging

		var (
			result domain.AgingResult
			err    error
		)
		if flagAsOf != "" {
			today, parseErr := domain.ParseDate(flagAsOf)
			if parseErr != nil {
				return fmt.Errorf("invalid --as-of: %w", parseErr)
			}
			result, err = svc.AgingAsOf(cmd.Context(), today)
		} else {
			result, err = svc.Aging(cmd.Context())
		}
		if err != nil {
			return err
		}

		printAging(cmd.OutOrStdout(), result, flagDetail)
		return nil
	},
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show transactions, statistics and aging together",
	RunE: func(cmd *cobra.Command, args []string) error {
		overview := newServices(nil).Overview.Overview(cmd.Context())

		out := cmd.OutOrStdout()
		printStatistics(out, overview.Statistics)
		printTransactions(out, &overview.Transactions)
		printAging(out, overview.Aging, false)
		printErrors(cmd.ErrOrStderr(), overview.Errors)
		return nil
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the account-code families used for classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		printChart(cmd.OutOrStdout(), services.NewChartService().ChartOfAccounts())
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a journal entry from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(flagEntryFile)
		if err != nil {
			return err
		}
		var req dto.CreateEntryRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("invalid entry file: %w", err)
		}

		dbPool, closePool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer closePool()

		result, err := newServices(dbPool).Posting.PostEntry(cmd.Context(), req.ToDomain(), flagUser)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("POSTED "+result.Entry.ReferenceNo))
		if result.ReplacedReference != nil {
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("reference %s was taken, posted as %s",
				result.ReplacedReference.Original, result.ReplacedReference.Replacement)))
		}
		return nil
	},
}

var attemptsCmd = &cobra.Command{
	Use:   "attempts",
	Short: "List recorded posting attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DatabaseURL == "" {
			return errors.New("PGSQL_URL must be set to read posting attempts")
		}
		dbPool, closePool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer closePool()

		params := portsrepo.ListAttemptsParams{ReferenceNo: flagReference, Limit: flagLimit}
		if flagNextToken != "" {
			params.NextToken = &flagNextToken
		}
		attempts, next, err := newServices(dbPool).Posting.ListAttempts(cmd.Context(), params)
		if err != nil {
			return err
		}

		printAttempts(cmd.OutOrStdout(), attempts, next)
		return nil
	},
}

// openPool connects to PostgreSQL when PGSQL_URL is set. The returned pool is nil otherwise.
func openPool(ctx context.Context) (*pgxpool.Pool, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}, nil
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{MaxConns: 2, ConnectTimeout: 10 * time.Second})
	if err != nil {
		return nil, nil, err
	}
	return pool, func() { database.ClosePgxPool(pool) }, nil
}

func init() {
	transactionsCmd.Flags().IntVar(&flagLimit, "limit", 50, "Page size")
	transactionsCmd.Flags().StringVar(&flagNextToken, "next-token", "", "Continuation token from a previous page")
	agingCmd.Flags().StringVar(&flagAsOf, "as-of", "", "Age as of this business date (YYYY-MM-DD)")
	agingCmd.Flags().BoolVar(&flagDetail, "detail", false, "List every aged receivable")
	postCmd.Flags().StringVarP(&flagEntryFile, "file", "f", "", "Path to the entry JSON")
	postCmd.Flags().StringVar(&flagUser, "user", "cli", "User recorded as the poster")
	_ = postCmd.MarkFlagRequired("file")

	attemptsCmd.Flags().StringVar(&flagReference, "reference", "", "Only attempts for this reference number")
	attemptsCmd.Flags().IntVar(&flagLimit, "limit", 50, "Page size")
	attemptsCmd.Flags().StringVar(&flagNextToken, "next-token", "", "Continuation token from a previous page")

	rootCmd.AddCommand(transactionsCmd, statsCmd, agingCmd, overviewCmd, chartCmd, postCmd, attemptsCmd)
}
