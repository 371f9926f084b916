package seeder

import (
	"context"
	"fmt"

	"jobscout/internal/database"

	"github.com/google/uuid"
)

type JobSourcesSeeder struct{}

func (JobSourcesSeeder) Name() string { return "job_sources" }

var seedJobSources = []struct {
	Name    string
	BaseURL string
}{
	{Name: "csv_import", BaseURL: ""},
	{Name: "Indeed", BaseURL: "https://www.indeed.com"},
	{Name: "LinkedIn", BaseURL: "https://www.linkedin.com"},
	{Name: "ZipRecruiter", BaseURL: "https://www.ziprecruiter.com"},
}

func (JobSourcesSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range seedJobSources {
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_sources (id, name, base_url) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			uuid.New(), it.Name, it.BaseURL,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
