package repository

import (
	"context"

	"jobscout/internal/database"
	"jobscout/internal/domain/user"

	"github.com/google/uuid"
)

// ProfileRepository stores the candidate side of compatibility scoring.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	// UpdateProfile writes the scalar fields and replaces the skill set.
	UpdateProfile(ctx context.Context, p user.Profile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	p := user.Profile{UserID: userID, SkillIDs: make([]uuid.UUID, 0)}

	row := r.db.QueryRow(ctx, `
		SELECT COALESCE(education, ''), COALESCE(years_exp, 0),
		       COALESCE(city, ''), COALESCE(state, '')
		FROM users WHERE id = $1`, userID)
	if err := row.Scan(&p.Education, &p.YearsExp, &p.City, &p.State); err != nil {
		return user.Profile{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT skill_id FROM user_skills WHERE user_id = $1`, userID)
	if err != nil {
		return user.Profile{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return user.Profile{}, err
		}
		p.SkillIDs = append(p.SkillIDs, id)
	}
	if err := rows.Err(); err != nil {
		return user.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) UpdateProfile(ctx context.Context, p user.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `
		UPDATE users SET education = $2, years_exp = $3, city = $4, state = $5
		WHERE id = $1`,
		p.UserID, p.Education, p.YearsExp, p.City, p.State,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1`, p.UserID); err != nil {
		return err
	}

	seen := make(map[uuid.UUID]struct{}, len(p.SkillIDs))
	for _, skillID := range p.SkillIDs {
		if skillID == uuid.Nil {
			continue
		}
		if _, ok := seen[skillID]; ok {
			continue
		}
		seen[skillID] = struct{}{}

		if _, err := tx.Exec(ctx,
			`INSERT INTO user_skills (id, user_id, skill_id) VALUES ($1, $2, $3)`,
			uuid.New(), p.UserID, skillID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
