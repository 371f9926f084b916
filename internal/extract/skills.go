package extract

import (
	"jobscout/internal/domain/skill"

	"github.com/google/uuid"
)

// MatchSkills scans normalized text for every catalog entry, trying the
// canonical name first and the aliases in catalog order otherwise. Each
// skill id is collected at most once no matter how many of its names hit.
func MatchSkills(text string, catalog []skill.Skill) []uuid.UUID {
	ids := make([]uuid.UUID, 0)
	for _, s := range catalog {
		if ContainsTerm(s.Name, text) {
			ids = append(ids, s.ID)
			continue
		}
		for _, alias := range s.Aliases {
			if ContainsTerm(alias, text) {
				ids = append(ids, s.ID)
				break
			}
		}
	}
	return ids
}
