package main

import (
	"jobscout/internal/importer"
	"jobscout/internal/repository"

	"github.com/spf13/cobra"
)

var importCitiesCmd = &cobra.Command{
	Use:   "import-cities",
	Short: "Import US states, counties and cities from census CSV files",
	RunE:  runImportCities,
}

var (
	statesPath  string
	citiesPath  string
	forceImport bool
)

func init() {
	importCitiesCmd.Flags().StringVar(&statesPath, "states", "", "Path to the states CSV (required)")
	importCitiesCmd.Flags().StringVar(&citiesPath, "cities", "", "Path to the cities CSV (required)")
	importCitiesCmd.Flags().BoolVar(&forceImport, "force", false, "Wipe existing geography and re-import")

	importCitiesCmd.MarkFlagRequired("states")
	importCitiesCmd.MarkFlagRequired("cities")

	rootCmd.AddCommand(importCitiesCmd)
}

func runImportCities(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	geo := repository.NewPostgresGeoRepository(db)
	imp := importer.NewCityImporter(geo, logger)
	return imp.Run(ctx, statesPath, citiesPath, forceImport)
}
