package repository

import (
	"context"
	"strings"

	"jobscout/internal/database"
	"jobscout/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillRepository interface {
	// Skills returns the full catalog with aliases, ordered by name. It
	// satisfies catalog.Source so it can sit behind the read-through cache.
	Skills(ctx context.Context) ([]skill.Skill, error)
	CreateSkill(ctx context.Context, name, category string, aliases []string) (skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) Skills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, s.category,
		       COALESCE(array_agg(a.name ORDER BY a.name) FILTER (WHERE a.name IS NOT NULL), '{}')
		FROM skills s
		LEFT JOIN skill_aliases a ON a.skill_id = s.id
		GROUP BY s.id, s.name, s.category
		ORDER BY s.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Aliases); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, name, category string, aliases []string) (skill.Skill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return skill.Skill{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	id := uuid.New()
	if _, err := tx.Exec(ctx,
		`INSERT INTO skills (id, name, category) VALUES ($1, $2, $3)`,
		id, name, category,
	); err != nil {
		return skill.Skill{}, err
	}

	kept := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO skill_aliases (id, skill_id, name) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			uuid.New(), id, alias,
		); err != nil {
			return skill.Skill{}, err
		}
		kept = append(kept, alias)
	}

	if err := tx.Commit(ctx); err != nil {
		return skill.Skill{}, err
	}
	return skill.Skill{ID: id, Name: name, Category: category, Aliases: kept}, nil
}
