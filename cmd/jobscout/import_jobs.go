package main

import (
	"jobscout/internal/catalog"
	"jobscout/internal/extract"
	"jobscout/internal/importer"
	"jobscout/internal/repository"
	"jobscout/internal/scraper"
	"jobscout/internal/usecase"

	"github.com/spf13/cobra"
)

var importJobsCmd = &cobra.Command{
	Use:   "import-jobs",
	Short: "Import job postings from a JobSpy CSV export",
	Long:  "Import job postings from a JobSpy CSV export. Each row runs through the same ingest path as scraped jobs, so skills, education and experience are extracted on the way in.",
	RunE:  runImportJobs,
}

var (
	jobsPath      string
	jobsSourceArg string
)

func init() {
	importJobsCmd.Flags().StringVar(&jobsPath, "file", "", "Path to the jobs CSV (required)")
	importJobsCmd.Flags().StringVar(&jobsSourceArg, "source", "csv_import", "Job source name to attribute imported rows to")

	importJobsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(importJobsCmd)
}

func runImportJobs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sourceID, err := scraper.EnsureJobSource(ctx, db, jobsSourceArg, "")
	if err != nil {
		return err
	}

	geo := repository.NewPostgresGeoRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	jobSkillRepo := repository.NewPostgresJobSkillRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)

	extractor := extract.New(catalog.NewMemo(skillRepo))
	ingest := usecase.NewJobIngestUsecase(jobRepo, jobSkillRepo, extractor)

	imp := importer.NewJobImporter(geo, ingest, logger)
	stats, err := imp.Run(ctx, jobsPath, sourceID)
	if err != nil {
		return err
	}

	logger.Printf("import finished source=%s imported=%d skipped=%d", jobsSourceArg, stats.Imported, stats.Skipped)
	return nil
}
