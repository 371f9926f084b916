package main

import (
	"jobscout/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the skill catalog and job sources",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		return err
	}

	logger.Printf("seed finished")
	return nil
}
