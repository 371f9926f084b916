package repository

import (
	"context"

	"jobscout/internal/database"

	"github.com/google/uuid"
)

// JobSkillRepository stores the required-skill set extracted from each job
// description. Replacement is wholesale: re-extraction deletes and rewrites.
type JobSkillRepository interface {
	FindSkillIDsByJobID(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error)
	FindSkillIDsByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
	ReplaceForJob(ctx context.Context, jobID uuid.UUID, skillIDs []uuid.UUID) error
}

type PostgresJobSkillRepository struct {
	db database.DB
}

func NewPostgresJobSkillRepository(db database.DB) *PostgresJobSkillRepository {
	return &PostgresJobSkillRepository{db: db}
}

func (r *PostgresJobSkillRepository) FindSkillIDsByJobID(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id FROM job_skills WHERE job_id = $1`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *PostgresJobSkillRepository) FindSkillIDsByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT job_id, skill_id FROM job_skills WHERE job_id = ANY($1)`, jobIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID, skillID uuid.UUID
		if err := rows.Scan(&jobID, &skillID); err != nil {
			return nil, err
		}
		out[jobID] = append(out[jobID], skillID)
	}
	return out, rows.Err()
}

func (r *PostgresJobSkillRepository) ReplaceForJob(ctx context.Context, jobID uuid.UUID, skillIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, jobID); err != nil {
		return err
	}

	seen := make(map[uuid.UUID]struct{}, len(skillIDs))
	for _, skillID := range skillIDs {
		if skillID == uuid.Nil {
			continue
		}
		if _, ok := seen[skillID]; ok {
			continue
		}
		seen[skillID] = struct{}{}

		if _, err := tx.Exec(ctx,
			`INSERT INTO job_skills (id, job_id, skill_id) VALUES ($1, $2, $3)`,
			uuid.New(), jobID, skillID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
