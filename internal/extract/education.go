package extract

import "jobscout/internal/domain/education"

// Trigger phrases per level, ordered ascending by degree. A posting that
// mentions several tiers ("bachelor's required, master's a plus") reports the
// lowest one mentioned, so iteration order is the policy.
var educationLevels = []struct {
	tag     string
	phrases []string
}{
	{education.HighSchool, []string{
		"high school diploma", "high school grad", "ged",
		"high school equiv", "hs diploma",
	}},
	{education.Associate, []string{
		"associate degree", "associates degree",
		"associate's degree", "a.s.", "a.a.", "a.a.s.",
	}},
	{education.Bachelor, []string{
		"bachelor", "b.s.", "b.a.", "bs", "ba",
		"undergraduate degree", "undergraduate's degree",
		"four year degree", "4 year degree",
	}},
	{education.Master, []string{
		"master's degree", "master degree", "m.s.", "m.a.",
		"master's of",
	}},
	{education.Doctorate, []string{
		"doctorate", "doctoral", "phd", "ph.d.", "d.sc.",
		"postgraduate degree",
	}},
}

// MatchEducation returns the lowest education level whose trigger phrases
// appear in normalized text, or education.None when nothing matches.
func MatchEducation(text string) string {
	for _, lvl := range educationLevels {
		for _, phrase := range lvl.phrases {
			if ContainsTerm(phrase, text) {
				return lvl.tag
			}
		}
	}
	return education.None
}
