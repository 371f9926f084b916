package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobscout/internal/extract"
	"jobscout/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidJob = errors.New("invalid job")

// Imported postings occasionally state absurd requirements ("150 years");
// anything above this is stored capped.
const maxIngestYears = 20

type JobIngestInput struct {
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
	PostedAt       *time.Time
	ScrapedAt      *time.Time
}

type JobIngestUsecase interface {
	IngestJob(ctx context.Context, in JobIngestInput) (uuid.UUID, extract.Facts, error)
}

// JobIngest is the single write path for postings: every job entering the
// system, scraped or imported, passes through extraction here so the stored
// facts always reflect the description text.
type JobIngest struct {
	jobs      repository.JobRepository
	jobSkills repository.JobSkillRepository
	extractor *extract.Extractor
}

func NewJobIngestUsecase(jobs repository.JobRepository, jobSkills repository.JobSkillRepository, extractor *extract.Extractor) *JobIngest {
	return &JobIngest{jobs: jobs, jobSkills: jobSkills, extractor: extractor}
}

func (u *JobIngest) IngestJob(ctx context.Context, in JobIngestInput) (uuid.UUID, extract.Facts, error) {
	if in.SourceID == uuid.Nil {
		return uuid.Nil, extract.Facts{}, ErrInvalidJob
	}
	if strings.TrimSpace(in.Title) == "" && strings.TrimSpace(in.URL) == "" {
		return uuid.Nil, extract.Facts{}, ErrInvalidJob
	}

	facts, err := u.extractor.Extract(ctx, in.Title+" "+in.Description)
	if err != nil {
		return uuid.Nil, extract.Facts{}, err
	}
	if facts.Years > maxIngestYears {
		facts.Years = maxIngestYears
	}

	jobID, err := u.jobs.UpsertJob(ctx, repository.JobUpsert{
		SourceID:       in.SourceID,
		ExternalJobID:  in.ExternalJobID,
		Title:          in.Title,
		Company:        in.Company,
		CityID:         in.CityID,
		Location:       in.Location,
		EmploymentType: in.EmploymentType,
		Description:    in.Description,
		URL:            in.URL,
		MinSalary:      in.MinSalary,
		MaxSalary:      in.MaxSalary,
		IsRemote:       in.IsRemote,
		Education:      facts.Education,
		YearsExp:       facts.Years,
		PostedAt:       in.PostedAt,
		ScrapedAt:      in.ScrapedAt,
	})
	if err != nil {
		return uuid.Nil, extract.Facts{}, err
	}

	if err := u.jobSkills.ReplaceForJob(ctx, jobID, facts.SkillIDs); err != nil {
		return uuid.Nil, extract.Facts{}, err
	}
	return jobID, facts, nil
}
