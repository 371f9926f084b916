package pipeline

import (
	"context"
	"sync"
	"testing"

	"jobscout/internal/domain/education"
	"jobscout/internal/domain/skill"
	"jobscout/internal/repository"

	"github.com/google/uuid"
)

type fakeJobStore struct {
	mu    sync.Mutex
	jobs  []repository.JobForExtraction
	facts map[uuid.UUID]struct {
		education string
		years     int
	}
}

func (f *fakeJobStore) ExistsByID(context.Context, uuid.UUID) (bool, error) { return true, nil }
func (f *fakeJobStore) GetByID(context.Context, uuid.UUID) (repository.JobListRow, error) {
	return repository.JobListRow{}, nil
}
func (f *fakeJobStore) ListJobs(context.Context, int, int) ([]repository.JobListRow, error) {
	return nil, nil
}
func (f *fakeJobStore) ListJobsForExtraction(_ context.Context, limit, offset int) ([]repository.JobForExtraction, error) {
	if offset >= len(f.jobs) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.jobs) {
		end = len(f.jobs)
	}
	return f.jobs[offset:end], nil
}
func (f *fakeJobStore) CountJobs(context.Context) (int, error) { return len(f.jobs), nil }
func (f *fakeJobStore) UpsertJob(context.Context, repository.JobUpsert) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (f *fakeJobStore) SetExtractedFacts(_ context.Context, jobID uuid.UUID, educationTag string, years int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.facts[jobID] = struct {
		education string
		years     int
	}{educationTag, years}
	return nil
}

type fakeJobSkillStore struct {
	mu       sync.Mutex
	replaced map[uuid.UUID][]uuid.UUID
}

func (f *fakeJobSkillStore) FindSkillIDsByJobID(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}
func (f *fakeJobSkillStore) FindSkillIDsByJobIDs(context.Context, []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	return nil, nil
}
func (f *fakeJobSkillStore) ReplaceForJob(_ context.Context, jobID uuid.UUID, skillIDs []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replaced[jobID] = skillIDs
	return nil
}

type fixedSkillSource struct{ skills []skill.Skill }

func (s fixedSkillSource) Skills(context.Context) ([]skill.Skill, error) { return s.skills, nil }

func TestExtractionPipeline_ReprocessesEveryJob(t *testing.T) {
	goID := uuid.New()
	jobA := uuid.New()
	jobB := uuid.New()

	jobs := &fakeJobStore{
		jobs: []repository.JobForExtraction{
			{ID: jobA, Title: "Go Engineer", Description: "3 years of experience with Go. Bachelor degree."},
			{ID: jobB, Title: "Intern", Description: "No requirements at all."},
		},
		facts: make(map[uuid.UUID]struct {
			education string
			years     int
		}),
	}
	jobSkills := &fakeJobSkillStore{replaced: make(map[uuid.UUID][]uuid.UUID)}
	src := fixedSkillSource{skills: []skill.Skill{{ID: goID, Name: "Go"}}}

	p := NewExtractionPipeline(jobs, jobSkills, src, nil)
	p.batchSize = 1
	stats, err := p.Run(context.Background(), RunParams{Workers: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Processed != 2 || stats.Failed != 0 {
		t.Fatalf("expected 2 processed and 0 failed, got %+v", stats)
	}

	got := jobs.facts[jobA]
	if got.education != education.Bachelor || got.years != 3 {
		t.Fatalf("unexpected facts for job A: %+v", got)
	}
	if len(jobSkills.replaced[jobA]) != 1 || jobSkills.replaced[jobA][0] != goID {
		t.Fatalf("expected Go matched for job A")
	}

	empty := jobs.facts[jobB]
	if empty.education != education.None || empty.years != 0 {
		t.Fatalf("expected empty facts for job B, got %+v", empty)
	}
	if len(jobSkills.replaced[jobB]) != 0 {
		t.Fatalf("expected no skills for job B")
	}
}

func TestExtractionPipeline_LimitCapsRun(t *testing.T) {
	jobs := &fakeJobStore{
		facts: make(map[uuid.UUID]struct {
			education string
			years     int
		}),
	}
	for i := 0; i < 5; i++ {
		jobs.jobs = append(jobs.jobs, repository.JobForExtraction{ID: uuid.New(), Title: "Engineer", Description: "2 years of experience."})
	}
	jobSkills := &fakeJobSkillStore{replaced: make(map[uuid.UUID][]uuid.UUID)}

	p := NewExtractionPipeline(jobs, jobSkills, fixedSkillSource{}, nil)
	stats, err := p.Run(context.Background(), RunParams{Workers: 2, Limit: 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Processed != 3 {
		t.Fatalf("expected limit of 3 to hold, processed %d", stats.Processed)
	}
	if len(jobs.facts) != 3 {
		t.Fatalf("expected facts written for 3 jobs, got %d", len(jobs.facts))
	}
}
