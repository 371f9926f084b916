package compat

import (
	"jobscout/internal/domain/education"

	"github.com/google/uuid"
)

// Dimension weights. Years of experience counts double because tenure is the
// strongest compatibility signal.
const (
	skillWeight = 0.25
	eduWeight   = 0.25
	yearsWeight = 0.5
)

// Profile is the candidate side of a comparison.
type Profile struct {
	SkillIDs  []uuid.UUID
	Education string
	YearsExp  int
}

// Requirement is what a job asks for, as produced by extraction.
type Requirement struct {
	SkillIDs  []uuid.UUID
	Education string
	YearsExp  int
}

// Result is ephemeral: computed fresh on every query, never persisted.
// Overqualification is informational and never reduces the score.
type Result struct {
	Score               float64
	OverqualifiedSkills bool
	OverqualifiedEdu    bool
	OverqualifiedYears  bool
}

// Score combines the three sub-scores into a value in [0, 100].
func Score(candidate Profile, req Requirement) Result {
	skills, overSkills := scoreSkills(candidate.SkillIDs, req.SkillIDs)
	edu, overEdu := scoreEducation(candidate.Education, req.Education)
	years, overYears := scoreYears(candidate.YearsExp, req.YearsExp)

	total := (skills*skillWeight + edu*eduWeight + years*yearsWeight) * 100

	return Result{
		Score:               total,
		OverqualifiedSkills: overSkills,
		OverqualifiedEdu:    overEdu,
		OverqualifiedYears:  overYears,
	}
}

func scoreSkills(have, want []uuid.UUID) (float64, bool) {
	if len(want) == 0 {
		return 1, len(have) > 0
	}

	haveSet := make(map[uuid.UUID]struct{}, len(have))
	for _, id := range have {
		haveSet[id] = struct{}{}
	}

	matched := 0
	for _, id := range want {
		if _, ok := haveSet[id]; ok {
			matched++
		}
	}

	score := float64(matched) / float64(len(want))
	return score, score == 1 && len(have) > len(want)
}

func scoreEducation(have, want string) (float64, bool) {
	reqOrd := education.Ordinal(want)
	if reqOrd == 0 {
		return 1, education.Ordinal(have) > 0
	}

	ratio := education.Ordinal(have) / reqOrd
	if ratio > 1 {
		return 1, true
	}
	return ratio, false
}

func scoreYears(have, want int) (float64, bool) {
	if want <= 0 {
		return 1, have > 0
	}

	ratio := float64(have) / float64(want)
	if ratio > 1 {
		return 1, true
	}
	if ratio < 0 {
		ratio = 0
	}
	return ratio, false
}
