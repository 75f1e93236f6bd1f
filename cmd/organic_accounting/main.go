package main

import (
	"log/slog"
	"os"
)

// @title Organic Store Accounting API
// @version 1.0
// @description Ledger-derived transaction classification, statistics and receivables aging for the organic produce store.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := Execute(); err != nil {
		slog.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
