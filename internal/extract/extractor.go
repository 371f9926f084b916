package extract

import (
	"context"

	"jobscout/internal/domain/skill"

	"github.com/google/uuid"
)

// Facts is everything the extractor pulls out of one job description.
type Facts struct {
	SkillIDs  []uuid.UUID
	Education string
	Years     int
}

// Catalog supplies the skill reference data. Implementations may cache;
// the extractor treats every call as a fresh read.
type Catalog interface {
	Skills(ctx context.Context) ([]skill.Skill, error)
}

type Extractor struct {
	catalog Catalog
}

func New(catalog Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}

// Extract normalizes raw text once and runs the skill, education and
// experience matchers against it. Malformed or empty text yields empty
// facts, never an error; the only error source is the catalog read.
func (e *Extractor) Extract(ctx context.Context, raw string) (Facts, error) {
	if e == nil || e.catalog == nil {
		return ExtractWith(raw, nil), nil
	}
	skills, err := e.catalog.Skills(ctx)
	if err != nil {
		return Facts{}, err
	}
	return ExtractWith(raw, skills), nil
}

// ExtractWith is the pure form used by batch jobs that already hold the
// catalog in memory.
func ExtractWith(raw string, catalog []skill.Skill) Facts {
	text := Normalize(raw)
	return Facts{
		SkillIDs:  MatchSkills(text, catalog),
		Education: MatchEducation(text),
		Years:     MatchExperience(text),
	}
}
