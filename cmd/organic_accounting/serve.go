package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/SscSPs/organic_store_accounting/internal/handlers"
	"github.com/SscSPs/organic_store_accounting/internal/middleware"
	"github.com/SscSPs/organic_store_accounting/pkg/database"
)

var (
	flagMigrationsPath string
	flagSkipMigrations bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var dbPool *pgxpool.Pool
		if cfg.DatabaseURL != "" {
			if !flagSkipMigrations {
				logger.Info("Running database migrations...")
				if err := database.RunMigrations(cfg.DatabaseURL, flagMigrationsPath, logger); err != nil {
					return err
				}
			}

			pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{ConnectTimeout: 10 * time.Second})
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)
			dbPool = pool
		}

		if cfg.IsProduction {
			gin.SetMode(gin.ReleaseMode)
		}

		r := gin.New()
		r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.MetricsMiddleware())
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendBaseURL},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))

		if err := r.SetTrustedProxies(nil); err != nil {
			return err
		}

		if err := handlers.RegisterRoutes(r, cfg, newServices(dbPool)); err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Server starting", slog.String("port", cfg.Port))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagMigrationsPath, "migrations", "file://migrations", "Migration source URL")
	serveCmd.Flags().BoolVar(&flagSkipMigrations, "skip-migrations", false, "Do not apply database migrations on start")
	rootCmd.AddCommand(serveCmd)
}
