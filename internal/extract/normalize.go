package extract

import "strings"

// Characters accepted as term delimiters. A term counts as present only when
// the characters on both sides of it come from this set, so "java" never
// matches inside "javascript" but "c++," and "c#." still match.
const ignoreSet = " !\"'\\`()\n\t,:;=<>?./"

// Normalize prepares raw description text for term search: lowercase, one
// space of padding on each end, newlines and tabs turned into spaces,
// backslashes dropped. The padding guarantees the first and last token still
// have a delimiter on both sides.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 2)
	b.WriteByte(' ')
	for _, r := range strings.ToLower(raw) {
		switch r {
		case '\n', '\t':
			b.WriteByte(' ')
		case '\\':
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(' ')
	return b.String()
}

func isDelimiter(c byte) bool {
	return strings.IndexByte(ignoreSet, c) >= 0
}

// ContainsTerm reports whether term occurs in normalized text with a
// delimiter character immediately before and after it. The term is lowercased
// before comparison; text is assumed to be output of Normalize.
func ContainsTerm(term, text string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return false
	}
	for start := 0; start < len(text); {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		i := start + idx
		end := i + len(term)
		if i > 0 && end < len(text) && isDelimiter(text[i-1]) && isDelimiter(text[end]) {
			return true
		}
		start = i + 1
	}
	return false
}
