package skill

import (
	"time"

	"github.com/google/uuid"
)

// Skill is catalog reference data. The extractor only ever reads it; the
// catalog is maintained by seeding and the skills endpoints.
type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Aliases   []string
	CreatedAt time.Time
}

// Alias is an alternate name for a catalog skill, e.g. "GCP" for
// "Google Cloud".
type Alias struct {
	ID      uuid.UUID
	SkillID uuid.UUID
	Name    string
}
