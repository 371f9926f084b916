package compat

import (
	"math"
	"testing"

	"jobscout/internal/domain/education"

	"github.com/google/uuid"
)

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore_NoRequirements(t *testing.T) {
	res := Score(Profile{}, Requirement{})
	if !almost(res.Score, 100) {
		t.Fatalf("empty vs empty: score %v, want 100", res.Score)
	}
	if res.OverqualifiedSkills || res.OverqualifiedEdu || res.OverqualifiedYears {
		t.Fatalf("empty candidate must not be overqualified: %+v", res)
	}

	cand := Profile{SkillIDs: ids(2), Education: education.Master, YearsExp: 4}
	res = Score(cand, Requirement{})
	if !almost(res.Score, 100) {
		t.Fatalf("qualified vs empty: score %v, want 100", res.Score)
	}
	if !res.OverqualifiedSkills || !res.OverqualifiedEdu || !res.OverqualifiedYears {
		t.Fatalf("all overqualified flags expected: %+v", res)
	}
}

func TestScore_WorkedExample(t *testing.T) {
	shared := uuid.New()
	other := uuid.New()

	cand := Profile{SkillIDs: []uuid.UUID{shared}, Education: education.Bachelor, YearsExp: 6}
	req := Requirement{SkillIDs: []uuid.UUID{shared, other}, Education: education.Bachelor, YearsExp: 5}

	res := Score(cand, req)
	// skills 0.5*0.25 + edu 1*0.25 + years 1*0.5 = 0.875
	if !almost(res.Score, 87.5) {
		t.Fatalf("score %v, want 87.5", res.Score)
	}
	if res.OverqualifiedSkills {
		t.Fatalf("half the skills is not overqualified")
	}
	if res.OverqualifiedEdu {
		t.Fatalf("exact education match is not overqualified")
	}
	if !res.OverqualifiedYears {
		t.Fatalf("6 years vs 5 required must flag overqualified years")
	}
}

func TestScore_StrictSupersetFlagsSkills(t *testing.T) {
	req := ids(2)
	cand := append([]uuid.UUID{uuid.New()}, req...)

	res := Score(Profile{SkillIDs: cand}, Requirement{SkillIDs: req, YearsExp: 1})
	if !res.OverqualifiedSkills {
		t.Fatalf("strict superset of required skills must flag overqualified")
	}

	// Exact coverage without extras is not overqualification.
	res = Score(Profile{SkillIDs: req}, Requirement{SkillIDs: req, YearsExp: 1})
	if res.OverqualifiedSkills {
		t.Fatalf("exact skill match must not flag overqualified")
	}
}

func TestScore_EducationRatio(t *testing.T) {
	res := Score(
		Profile{Education: education.Associate},
		Requirement{Education: education.Doctorate, YearsExp: 1},
	)
	// skills 1*0.25 + edu 0.4*0.25 + years 0*0.5 = 0.35
	if !almost(res.Score, 35) {
		t.Fatalf("score %v, want 35", res.Score)
	}
	if res.OverqualifiedEdu {
		t.Fatalf("associate vs doctorate is underqualified")
	}

	res = Score(
		Profile{Education: education.Doctorate},
		Requirement{Education: education.Bachelor},
	)
	if !res.OverqualifiedEdu {
		t.Fatalf("doctorate vs bachelor must flag overqualified")
	}
	if !almost(res.Score, 100) {
		t.Fatalf("overqualification must not reduce score, got %v", res.Score)
	}
}

func TestScore_UnknownEducationTagRatesAsNone(t *testing.T) {
	res := Score(
		Profile{Education: "bootcamp"},
		Requirement{Education: education.Bachelor, YearsExp: 1},
	)
	// Unknown tag -> ordinal 0 -> edu sub-score 0, no panic, no flag.
	if !almost(res.Score, 25) {
		t.Fatalf("score %v, want 25", res.Score)
	}
	if res.OverqualifiedEdu {
		t.Fatalf("unknown tag must not flag overqualified")
	}
}

func TestScore_Bounds(t *testing.T) {
	cases := []struct {
		cand Profile
		req  Requirement
	}{
		{Profile{}, Requirement{SkillIDs: ids(3), Education: education.Doctorate, YearsExp: 15}},
		{Profile{SkillIDs: ids(10), Education: education.Doctorate, YearsExp: 40}, Requirement{SkillIDs: ids(1), Education: education.HighSchool, YearsExp: 1}},
		{Profile{YearsExp: 2}, Requirement{YearsExp: 8}},
	}

	for i, tc := range cases {
		res := Score(tc.cand, tc.req)
		if res.Score < 0 || res.Score > 100 {
			t.Fatalf("case %d: score %v out of [0,100]", i, res.Score)
		}
	}
}

func TestScore_MonotonicInYears(t *testing.T) {
	req := Requirement{SkillIDs: ids(2), Education: education.Bachelor, YearsExp: 10}
	prev := -1.0
	for y := 0; y <= 12; y++ {
		res := Score(Profile{YearsExp: y}, req)
		if res.Score < prev {
			t.Fatalf("score decreased at years=%d: %v < %v", y, res.Score, prev)
		}
		prev = res.Score
	}
}
