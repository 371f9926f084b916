package usecase

import (
	"context"
	"errors"
	"strings"

	"jobscout/internal/catalog"
	"jobscout/internal/domain/skill"
	"jobscout/internal/repository"
)

var (
	ErrSkillExists  = errors.New("skill already exists")
	ErrInvalidSkill = errors.New("invalid skill")
)

type CreateSkillInput struct {
	Name     string
	Category string
	Aliases  []string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	CreateSkill(ctx context.Context, in CreateSkillInput) (skill.Skill, error)
}

// Skills serves the catalog read path from cache and invalidates it on
// writes, so extraction always sees a freshly created skill.
type Skills struct {
	source repository.SkillRepository
	cached *catalog.RedisCatalog
}

func NewSkillUsecase(source repository.SkillRepository, cached *catalog.RedisCatalog) *Skills {
	return &Skills{source: source, cached: cached}
}

func (u *Skills) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	var (
		out []skill.Skill
		err error
	)
	if u.cached != nil {
		out, err = u.cached.Skills(ctx)
	} else {
		out, err = u.source.Skills(ctx)
	}
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Skills) CreateSkill(ctx context.Context, in CreateSkillInput) (skill.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.Skill{}, ErrInvalidSkill
	}

	existing, err := u.source.Skills(ctx)
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	for _, s := range existing {
		if strings.EqualFold(s.Name, name) {
			return skill.Skill{}, ErrSkillExists
		}
	}

	aliases := make([]string, 0, len(in.Aliases))
	for _, a := range in.Aliases {
		a = strings.TrimSpace(a)
		if a != "" {
			aliases = append(aliases, a)
		}
	}

	created, err := u.source.CreateSkill(ctx, name, strings.TrimSpace(in.Category), aliases)
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	if u.cached != nil {
		_ = u.cached.Invalidate(ctx)
	}
	return created, nil
}
