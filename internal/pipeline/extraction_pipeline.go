package pipeline

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"jobscout/internal/catalog"
	"jobscout/internal/extract"
	"jobscout/internal/repository"
	"jobscout/internal/ws"
)

// ExtractionPipeline re-runs fact extraction over stored jobs. It is the
// recovery path after a skill catalog change: stored facts are a pure
// function of the text and the catalog, so a full re-run converges every
// row to the current rules.
type ExtractionPipeline struct {
	jobs      repository.JobRepository
	jobSkills repository.JobSkillRepository
	skills    catalog.Source
	log       *log.Logger
	batchSize int
}

func NewExtractionPipeline(jobs repository.JobRepository, jobSkills repository.JobSkillRepository, skills catalog.Source, logger *log.Logger) *ExtractionPipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &ExtractionPipeline{jobs: jobs, jobSkills: jobSkills, skills: skills, log: logger, batchSize: 100}
}

type RunParams struct {
	Workers int
	Limit   int
}

type RunStats struct {
	Processed int
	Failed    int
	Duration  time.Duration
}

const maxExtractYears = 20

func (p *ExtractionPipeline) Run(ctx context.Context, params RunParams) (RunStats, error) {
	if p == nil || p.jobs == nil || p.jobSkills == nil {
		return RunStats{}, nil
	}
	workers := params.Workers
	if workers <= 0 {
		workers = 5
	}

	start := time.Now()

	// One catalog read per run; every job in the run sees the same rules.
	skills, err := catalog.NewMemo(p.skills).Skills(ctx)
	if err != nil {
		return RunStats{}, err
	}
	total, err := p.jobs.CountJobs(ctx)
	if err != nil {
		return RunStats{}, err
	}
	// Limit caps the run; zero means every stored job.
	if params.Limit > 0 && params.Limit < total {
		total = params.Limit
	}

	var processed, failed atomic.Int64

	offset := 0
	for offset < total {
		if ctx.Err() != nil {
			return RunStats{}, ctx.Err()
		}

		batchSize := p.batchSize
		if remaining := total - offset; remaining < batchSize {
			batchSize = remaining
		}
		batch, err := p.jobs.ListJobsForExtraction(ctx, batchSize, offset)
		if err != nil {
			return RunStats{}, err
		}
		if len(batch) == 0 {
			break
		}

		pool := NewWorkerPool(workers, workers*2)
		results := pool.Run(ctx)

		for _, j := range batch {
			j := j
			pool.Submit(func(ctx context.Context) error {
				taskStart := time.Now()

				facts := extract.ExtractWith(j.Title+" "+j.Description, skills)
				if facts.Years > maxExtractYears {
					facts.Years = maxExtractYears
				}

				if err := p.jobs.SetExtractedFacts(ctx, j.ID, facts.Education, facts.Years); err != nil {
					p.log.Printf("pipeline=extraction status=error job_id=%s err=%v duration=%s", j.ID, err, time.Since(taskStart))
					return err
				}
				if err := p.jobSkills.ReplaceForJob(ctx, j.ID, facts.SkillIDs); err != nil {
					p.log.Printf("pipeline=extraction status=error job_id=%s err=%v duration=%s", j.ID, err, time.Since(taskStart))
					return err
				}

				p.log.Printf("pipeline=extraction status=ok job_id=%s skills=%d education=%q years=%d duration=%s",
					j.ID, len(facts.SkillIDs), facts.Education, facts.Years, time.Since(taskStart))
				return nil
			})
		}

		pool.Close()

		for r := range results {
			processed.Add(1)
			if r.Err != nil {
				failed.Add(1)
			}
		}

		ws.NotifyExtractionProgress(int(processed.Load()), total, int(failed.Load()), false)
		offset += len(batch)
	}

	stats := RunStats{
		Processed: int(processed.Load()),
		Failed:    int(failed.Load()),
		Duration:  time.Since(start),
	}
	ws.NotifyExtractionProgress(stats.Processed, total, stats.Failed, true)
	p.log.Printf("pipeline=extraction status=done processed=%d failed=%d duration=%s", stats.Processed, stats.Failed, stats.Duration)
	return stats, nil
}
