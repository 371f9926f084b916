// Package main provides the jobscout operational CLI: geography and job
// imports, catalog seeding, scraping and batch re-extraction.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"jobscout/internal/config"
	"jobscout/internal/database"
	dbpostgres "jobscout/internal/database/postgres"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobscout",
	Short: "jobscout data tooling",
	Long:  "Operational commands for the jobscout backend: import geography and job CSVs, seed reference data, scrape job boards and re-run extraction.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	return log.New(os.Stdout, "", log.LstdFlags)
}

// connectDB loads config and opens the pool. Every subcommand that touches
// the database goes through it so connection behavior stays uniform.
func connectDB(ctx context.Context) (database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
