package extract

import (
	"testing"

	"jobscout/internal/domain/education"
)

func TestMatchEducation(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"bachelor phrase", "a bachelor's degree in CS", education.Bachelor},
		{"doctorate phrase", "PhD strongly preferred", education.Doctorate},
		{"abbreviation with periods", "requires a b.s. or equivalent", education.Bachelor},
		{"high school", "high school diploma or GED", education.HighSchool},
		{"associate", "an associate's degree is enough", education.Associate},
		{"master", "master's degree required", education.Master},
		{"nothing mentioned", "just bring enthusiasm", education.None},
		{"empty", "", education.None},
	}

	for _, tc := range cases {
		if got := MatchEducation(Normalize(tc.text)); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestMatchEducation_LowestMentionedWins(t *testing.T) {
	text := Normalize("Bachelor's required, PhD a plus")
	if got := MatchEducation(text); got != education.Bachelor {
		t.Fatalf("got %q, want bachelor (lowest mentioned tier)", got)
	}

	text = Normalize("We accept a master's degree or doctorate")
	if got := MatchEducation(text); got != education.Master {
		t.Fatalf("got %q, want master", got)
	}
}
