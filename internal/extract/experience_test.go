package extract

import "testing"

func TestCollapseRanges(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"tight range", " 5-10 years ", " 5 years "},
		{"spaced range", " 5 - 10 years ", " 5 years "},
		{"reversed range", " 10-5 years ", " 5 years "},
		{"no digits before", " - 10 years ", " - 10 years "},
		{"no digits after", " 10 - few ", " 10 - few "},
		{"leading hyphen", "-5 ok", "-5 ok"},
		{"two ranges", " 2-4 or 6-9 ", " 2 or 6 "},
		{"chained hyphens", " 3-5-7 ", " 3-7 "},
		{"multiple numbers in span", " 5 10-7 ", " 5 10-7 "},
		{"plain text", " no ranges here ", " no ranges here "},
	}

	for _, tc := range cases {
		if got := collapseRanges(tc.in); got != tc.want {
			t.Fatalf("%s: collapseRanges(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestMatchExperience(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"range collapses to minimum", "5-10 years of experience required", 5},
		{"spaced range", "between 5 - 10 years of experience", 5},
		{"word number", "five years of experience", 5},
		{"yoe abbreviation", "3 YoE", 3},
		{"yoe mid sentence", "we want 4 yoe minimum", 4},
		{"year without experience nearby", "8 years of gardening", 0},
		{"experience without number", "years of experience required", 0},
		{"max across mentions", "3 years of experience in Go. 7 years of experience in SQL.", 7},
		{"zero years", "zero years of experience needed", 0},
		{"no mention at all", "friendly team, great snacks", 0},
		{"empty", "", 0},
	}

	for _, tc := range cases {
		if got := MatchExperience(Normalize(tc.text)); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestMatchExperience_PunctuationAroundNumbers(t *testing.T) {
	// "C++," must not leave stray symbols that break tokenization.
	text := Normalize("6 years of experience with C++, C#, and Go.")
	if got := MatchExperience(text); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestMatchExperience_NeverNegative(t *testing.T) {
	for _, raw := range []string{"", "-", "year", "yoe", "experience", "-3 years experience"} {
		if got := MatchExperience(Normalize(raw)); got < 0 {
			t.Fatalf("MatchExperience(%q) = %d, must be non-negative", raw, got)
		}
	}
}
