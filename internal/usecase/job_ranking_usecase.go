package usecase

import (
	"context"
	"errors"
	"sort"

	"jobscout/internal/domain/compat"
	"jobscout/internal/domain/user"
	"jobscout/internal/repository"

	"github.com/google/uuid"
)

var ErrProfileEmpty = errors.New("profile has no skills, education or experience")

type RecommendationParams struct {
	Limit    int
	Offset   int
	MinScore float64
}

type RankedJob struct {
	Job                 repository.JobListRow
	SkillIDs            []uuid.UUID
	Score               float64
	OverqualifiedSkills bool
	OverqualifiedEdu    bool
	OverqualifiedYears  bool
}

type JobRankingUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, params RecommendationParams) ([]RankedJob, error)
	Compatibility(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) (RankedJob, error)
}

// JobRanking scores jobs against a candidate profile at query time.
// Scores are never stored; a profile edit is visible on the next request.
type JobRanking struct {
	profiles  repository.ProfileRepository
	jobs      repository.JobRepository
	jobSkills repository.JobSkillRepository
}

func NewJobRankingUsecase(profiles repository.ProfileRepository, jobs repository.JobRepository, jobSkills repository.JobSkillRepository) *JobRanking {
	return &JobRanking{profiles: profiles, jobs: jobs, jobSkills: jobSkills}
}

func (u *JobRanking) GetRecommendations(ctx context.Context, userID uuid.UUID, params RecommendationParams) ([]RankedJob, error) {
	candidate, err := u.candidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit, offset := clampPage(JobListParams{Limit: params.Limit, Offset: params.Offset})
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}

	rows, err := u.jobs.ListJobs(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	if len(rows) == 0 {
		return nil, ErrNoJobsFound
	}

	jobIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		jobIDs = append(jobIDs, r.ID)
	}
	skillsByJob, err := u.jobSkills.FindSkillIDsByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RankedJob, 0, len(rows))
	for _, r := range rows {
		ranked := rankOne(candidate, r, skillsByJob[r.ID])
		if ranked.Score < minScore {
			continue
		}
		out = append(out, ranked)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) == 0 {
		return nil, ErrNoJobsFound
	}
	return out, nil
}

func (u *JobRanking) Compatibility(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) (RankedJob, error) {
	candidate, err := u.candidate(ctx, userID)
	if err != nil {
		return RankedJob{}, err
	}

	row, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return RankedJob{}, ErrJobNotFound
	}
	skillIDs, err := u.jobSkills.FindSkillIDsByJobID(ctx, jobID)
	if err != nil {
		return RankedJob{}, ErrInternal
	}

	return rankOne(candidate, row, skillIDs), nil
}

func (u *JobRanking) candidate(ctx context.Context, userID uuid.UUID) (compat.Profile, error) {
	if userID == uuid.Nil {
		return compat.Profile{}, ErrUnauthorized
	}
	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return compat.Profile{}, ErrUnauthorized
		}
		return compat.Profile{}, ErrInternal
	}
	if len(p.SkillIDs) == 0 && p.Education == "" && p.YearsExp == 0 {
		return compat.Profile{}, ErrProfileEmpty
	}
	return compat.Profile{
		SkillIDs:  p.SkillIDs,
		Education: p.Education,
		YearsExp:  p.YearsExp,
	}, nil
}

func rankOne(candidate compat.Profile, row repository.JobListRow, skillIDs []uuid.UUID) RankedJob {
	res := compat.Score(candidate, compat.Requirement{
		SkillIDs:  skillIDs,
		Education: row.Education,
		YearsExp:  row.YearsExp,
	})
	return RankedJob{
		Job:                 row,
		SkillIDs:            skillIDs,
		Score:               res.Score,
		OverqualifiedSkills: res.OverqualifiedSkills,
		OverqualifiedEdu:    res.OverqualifiedEdu,
		OverqualifiedYears:  res.OverqualifiedYears,
	}
}
