package repository

import (
	"context"
	"strings"
	"time"

	"jobscout/internal/database"

	"github.com/google/uuid"
)

type JobListRow struct {
	ID             uuid.UUID
	Title          string
	Company        string
	Location       string
	EmploymentType string
	Description    string
	URL            string
	MinSalary      *float64
	MaxSalary      *float64
	IsRemote       bool
	Education      string
	YearsExp       int
	PostedAt       *time.Time
}

type JobForExtraction struct {
	ID          uuid.UUID
	Title       string
	Description string
}

type JobUpsert struct {
	SourceID       uuid.UUID
	ExternalJobID  string
	Title          string
	Company        string
	CityID         *uuid.UUID
	Location       string
	EmploymentType string
	Description    string
	URL            string
	MinSalary      *float64
	MaxSalary      *float64
	IsRemote       bool
	Education      string
	YearsExp       int
	PostedAt       *time.Time
	ScrapedAt      *time.Time
}

type JobRepository interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobListRow, error)
	ListJobs(ctx context.Context, limit, offset int) ([]JobListRow, error)
	ListJobsForExtraction(ctx context.Context, limit, offset int) ([]JobForExtraction, error)
	CountJobs(ctx context.Context) (int, error)
	UpsertJob(ctx context.Context, in JobUpsert) (uuid.UUID, error)
	// SetExtractedFacts replaces the education and years facts wholesale.
	SetExtractedFacts(ctx context.Context, jobID uuid.UUID, educationTag string, years int) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobListColumns = `
	id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''),
	COALESCE(employment_type, ''), COALESCE(description, ''), COALESCE(url, ''),
	min_salary, max_salary, is_remote, COALESCE(education, ''), COALESCE(years_exp, 0),
	posted_at`

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (JobListRow, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobListColumns+` FROM jobs WHERE id = $1`, id)
	return scanJobListRow(row)
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, limit, offset int) ([]JobListRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+jobListColumns+`
		FROM jobs
		WHERE is_active = true
		ORDER BY posted_at DESC NULLS LAST, created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobListRow, 0)
	for rows.Next() {
		j, err := scanJobListRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) ListJobsForExtraction(ctx context.Context, limit, offset int) ([]JobForExtraction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(title, ''), COALESCE(description, '')
		FROM jobs
		WHERE is_active = true
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobForExtraction, 0)
	for rows.Next() {
		var j JobForExtraction
		if err := rows.Scan(&j.ID, &j.Title, &j.Description); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) CountJobs(ctx context.Context) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE is_active = true`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobRepository) UpsertJob(ctx context.Context, in JobUpsert) (uuid.UUID, error) {
	id := uuid.New()
	row := r.db.QueryRow(ctx, `
		INSERT INTO jobs (
			id, source_id, external_job_id, title, company, city_id, location,
			employment_type, description, url, min_salary, max_salary, is_remote,
			education, years_exp, posted_at, scraped_at, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,true)
		ON CONFLICT (source_id, external_job_id) DO UPDATE SET
			title = COALESCE(EXCLUDED.title, jobs.title),
			company = COALESCE(EXCLUDED.company, jobs.company),
			city_id = COALESCE(EXCLUDED.city_id, jobs.city_id),
			location = COALESCE(EXCLUDED.location, jobs.location),
			employment_type = COALESCE(EXCLUDED.employment_type, jobs.employment_type),
			description = COALESCE(EXCLUDED.description, jobs.description),
			url = COALESCE(EXCLUDED.url, jobs.url),
			min_salary = COALESCE(EXCLUDED.min_salary, jobs.min_salary),
			max_salary = COALESCE(EXCLUDED.max_salary, jobs.max_salary),
			is_remote = EXCLUDED.is_remote,
			education = EXCLUDED.education,
			years_exp = EXCLUDED.years_exp,
			posted_at = COALESCE(EXCLUDED.posted_at, jobs.posted_at),
			scraped_at = COALESCE(EXCLUDED.scraped_at, jobs.scraped_at),
			is_active = true
		RETURNING id`,
		id,
		in.SourceID,
		strings.TrimSpace(in.ExternalJobID),
		nullableText(in.Title),
		nullableText(in.Company),
		in.CityID,
		nullableText(in.Location),
		nullableText(in.EmploymentType),
		nullableText(in.Description),
		nullableText(in.URL),
		in.MinSalary,
		in.MaxSalary,
		in.IsRemote,
		in.Education,
		in.YearsExp,
		in.PostedAt,
		in.ScrapedAt,
	)

	var got uuid.UUID
	if err := row.Scan(&got); err != nil {
		return uuid.Nil, err
	}
	return got, nil
}

func (r *PostgresJobRepository) SetExtractedFacts(ctx context.Context, jobID uuid.UUID, educationTag string, years int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE jobs SET education = $2, years_exp = $3 WHERE id = $1`,
		jobID, educationTag, years,
	)
	return err
}

func scanJobListRow(row database.Row) (JobListRow, error) {
	var j JobListRow
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.EmploymentType,
		&j.Description, &j.URL, &j.MinSalary, &j.MaxSalary, &j.IsRemote,
		&j.Education, &j.YearsExp, &j.PostedAt,
	)
	return j, err
}

func nullableText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
