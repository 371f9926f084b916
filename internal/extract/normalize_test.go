package extract

import "testing"

func TestNormalize(t *testing.T) {
	got := Normalize("Senior\tGo\nDeveloper \\ wanted")
	want := " senior go developer  wanted "
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "  " {
		t.Fatalf("got %q, want two spaces", got)
	}
}

func TestContainsTerm_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		term string
		text string
		want bool
	}{
		{"simple word", "java", Normalize("we use Java here"), true},
		{"term at start", "java", Normalize("Java required"), true},
		{"term at end", "java", Normalize("must know Java"), true},
		{"embedded in longer token", "java", Normalize("javascript only"), false},
		{"prefix of longer token", "java", Normalize("javac toolchain"), false},
		{"punctuation adjacent", "c++", Normalize("knows C++, python"), true},
		{"parenthesized", "aws", Normalize("cloud (AWS) experience"), true},
		{"slash delimited", "gcp", Normalize("Google Cloud/GCP preferred"), true},
		{"case insensitive term", "PYTHON", Normalize("python developer"), true},
		{"absent", "rust", Normalize("python developer"), false},
		{"empty term", "", Normalize("anything"), false},
		{"empty text", "go", Normalize(""), false},
	}

	for _, tc := range cases {
		if got := ContainsTerm(tc.term, tc.text); got != tc.want {
			t.Fatalf("%s: ContainsTerm(%q) = %v, want %v", tc.name, tc.term, got, tc.want)
		}
	}
}
