package main

import (
	"jobscout/internal/catalog"
	"jobscout/internal/pipeline"
	"jobscout/internal/repository"

	"github.com/spf13/cobra"
)

var reextractCmd = &cobra.Command{
	Use:   "reextract",
	Short: "Re-run skill, education and experience extraction over stored jobs",
	RunE:  runReextract,
}

var (
	reextractWorkers int
	reextractLimit   int
)

func init() {
	reextractCmd.Flags().IntVar(&reextractWorkers, "workers", 5, "Concurrent extraction workers")
	reextractCmd.Flags().IntVar(&reextractLimit, "limit", 0, "Maximum jobs to process (0 = all)")

	rootCmd.AddCommand(reextractCmd)
}

func runReextract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	jobRepo := repository.NewPostgresJobRepository(db)
	jobSkillRepo := repository.NewPostgresJobSkillRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)

	p := pipeline.NewExtractionPipeline(jobRepo, jobSkillRepo, catalog.NewMemo(skillRepo), logger)
	stats, err := p.Run(ctx, pipeline.RunParams{Workers: reextractWorkers, Limit: reextractLimit})
	if err != nil {
		return err
	}

	logger.Printf("reextract finished processed=%d failed=%d duration=%s", stats.Processed, stats.Failed, stats.Duration)
	return nil
}
