package usecase

import (
	"context"
	"errors"

	"jobscout/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrNoJobsFound = errors.New("no jobs found")
)

type JobListParams struct {
	Limit  int
	Offset int
}

type JobListItem struct {
	repository.JobListRow
	SkillIDs []uuid.UUID
}

type JobListResult struct {
	Items []JobListItem
	Total int
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) (JobListResult, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (JobListItem, error)
}

type JobList struct {
	jobs      repository.JobRepository
	jobSkills repository.JobSkillRepository
}

func NewJobListUsecase(jobs repository.JobRepository, jobSkills repository.JobSkillRepository) *JobList {
	return &JobList{jobs: jobs, jobSkills: jobSkills}
}

func clampPage(params JobListParams) (int, int) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) (JobListResult, error) {
	limit, offset := clampPage(params)

	rows, err := u.jobs.ListJobs(ctx, limit, offset)
	if err != nil {
		return JobListResult{}, ErrInternal
	}
	total, err := u.jobs.CountJobs(ctx)
	if err != nil {
		return JobListResult{}, ErrInternal
	}

	jobIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		jobIDs = append(jobIDs, r.ID)
	}
	skillsByJob, err := u.jobSkills.FindSkillIDsByJobIDs(ctx, jobIDs)
	if err != nil {
		return JobListResult{}, ErrInternal
	}

	items := make([]JobListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, JobListItem{JobListRow: r, SkillIDs: skillsByJob[r.ID]})
	}
	return JobListResult{Items: items, Total: total}, nil
}

func (u *JobList) GetJob(ctx context.Context, jobID uuid.UUID) (JobListItem, error) {
	if jobID == uuid.Nil {
		return JobListItem{}, ErrJobNotFound
	}
	row, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return JobListItem{}, ErrJobNotFound
	}
	skillIDs, err := u.jobSkills.FindSkillIDsByJobID(ctx, jobID)
	if err != nil {
		return JobListItem{}, ErrInternal
	}
	return JobListItem{JobListRow: row, SkillIDs: skillIDs}, nil
}
