package main

import (
	"fmt"

	"jobscout/internal/database/migration"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runMigrate,
}

var migrationsDir string

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "Directory holding V<version>__<name>.sql files")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sqlDB := db.SQLDB()
	if sqlDB == nil {
		return fmt.Errorf("migration runner needs a sql.DB handle")
	}

	runner := migration.Runner{Dir: migrationsDir}
	if err := runner.Run(ctx, sqlDB); err != nil {
		return err
	}

	logger.Printf("migrations applied dir=%s", migrationsDir)
	return nil
}
