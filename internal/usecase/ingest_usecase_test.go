package usecase

import (
	"context"
	"errors"
	"testing"

	"jobscout/internal/domain/education"
	"jobscout/internal/domain/skill"
	"jobscout/internal/extract"
	"jobscout/internal/repository"

	"github.com/google/uuid"
)

type recordingJobRepo struct {
	mockJobRepo
	upserted *repository.JobUpsert
	jobID    uuid.UUID
}

func (r *recordingJobRepo) UpsertJob(_ context.Context, in repository.JobUpsert) (uuid.UUID, error) {
	r.upserted = &in
	return r.jobID, nil
}

type recordingJobSkillRepo struct {
	mockJobSkillRepo
	replaced []uuid.UUID
}

func (r *recordingJobSkillRepo) ReplaceForJob(_ context.Context, _ uuid.UUID, skillIDs []uuid.UUID) error {
	r.replaced = skillIDs
	return nil
}

type staticCatalog struct{ skills []skill.Skill }

func (s staticCatalog) Skills(context.Context) ([]skill.Skill, error) { return s.skills, nil }

func TestJobIngest_ExtractsFactsFromTitleAndDescription(t *testing.T) {
	pythonID := uuid.New()
	awsID := uuid.New()
	cat := staticCatalog{skills: []skill.Skill{
		{ID: pythonID, Name: "Python"},
		{ID: awsID, Name: "AWS", Aliases: []string{"Amazon Web Services"}},
	}}

	jobs := &recordingJobRepo{jobID: uuid.New()}
	jobSkills := &recordingJobSkillRepo{}
	uc := NewJobIngestUsecase(jobs, jobSkills, extract.New(cat))

	jobID, facts, err := uc.IngestJob(context.Background(), JobIngestInput{
		SourceID:    uuid.New(),
		Title:       "Python Developer",
		Description: "5-10 years of experience, bachelor degree, Amazon Web Services.",
		URL:         "https://example.com/jobs/1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if jobID != jobs.jobID {
		t.Fatalf("expected the repository job id back")
	}
	if len(facts.SkillIDs) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(facts.SkillIDs))
	}
	if facts.Education != education.Bachelor {
		t.Fatalf("expected bachelor, got %q", facts.Education)
	}
	if facts.Years != 5 {
		t.Fatalf("expected 5 years, got %d", facts.Years)
	}

	if jobs.upserted == nil {
		t.Fatalf("expected an upsert")
	}
	if jobs.upserted.Education != education.Bachelor || jobs.upserted.YearsExp != 5 {
		t.Fatalf("facts not written through: %+v", jobs.upserted)
	}
	if len(jobSkills.replaced) != 2 {
		t.Fatalf("expected job skills replaced with 2 ids, got %d", len(jobSkills.replaced))
	}
}

func TestJobIngest_CapsAbsurdYears(t *testing.T) {
	jobs := &recordingJobRepo{jobID: uuid.New()}
	uc := NewJobIngestUsecase(jobs, &recordingJobSkillRepo{}, extract.New(staticCatalog{}))

	_, facts, err := uc.IngestJob(context.Background(), JobIngestInput{
		SourceID:    uuid.New(),
		Title:       "Engineer",
		Description: "150 years of experience required.",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if facts.Years != maxIngestYears {
		t.Fatalf("expected years capped at %d, got %d", maxIngestYears, facts.Years)
	}
	if jobs.upserted.YearsExp != maxIngestYears {
		t.Fatalf("cap not applied to the stored row")
	}
}

func TestJobIngest_RejectsMissingSource(t *testing.T) {
	uc := NewJobIngestUsecase(&recordingJobRepo{}, &recordingJobSkillRepo{}, extract.New(staticCatalog{}))
	_, _, err := uc.IngestJob(context.Background(), JobIngestInput{Title: "Engineer"})
	if !errors.Is(err, ErrInvalidJob) {
		t.Fatalf("expected ErrInvalidJob, got %v", err)
	}
}
