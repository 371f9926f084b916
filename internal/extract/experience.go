package extract

import (
	"strconv"
	"strings"
)

// Spelled-out numbers recognized during experience parsing; the index of a
// word is its value.
var numberWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen",
	"fourteen", "fifteen", "sixteen", "seventeen", "eighteen",
}

const (
	// How far around a "year" token to look for the word "experience".
	experienceSearchRange = 7
	// How far behind a "year"/"yoe" token to look for a number.
	numberLookback = 5
)

// MatchExperience extracts the required years of experience from normalized
// text. Ranges collapse to their minimum, spelled-out numbers become
// numerals, and the largest number found near a "year" or "yoe" mention wins.
// Returns 0 when no requirement is found; never negative.
func MatchExperience(text string) int {
	text = collapseRanges(text)
	text = stripPunctuation(text)

	tokens := strings.Fields(text)
	for i, tok := range tokens {
		for n, word := range numberWords {
			if tok == word {
				tokens[i] = strconv.Itoa(n)
				break
			}
		}
	}

	years := -1
	for i, tok := range tokens {
		if strings.Contains(tok, "year") && experienceNearby(tokens, i) {
			years = maxNumberBehind(tokens, i, years)
		}
		// "yoe" is self-sufficient, no proximity check needed.
		if strings.Contains(tok, "yoe") {
			years = maxNumberBehind(tokens, i, years)
		}
	}

	// Sub-year requirements are not distinguished from absent ones.
	if years < 1 {
		return 0
	}
	return years
}

type rangeSpan struct {
	start, end int
	repl       string
}

// collapseRanges rewrites numeric ranges like "5-10" or "5 - 10" to the
// minimum of the two endpoints. Spans are collected in one scan over the
// original text and applied afterwards, so earlier rewrites cannot shift the
// positions of hyphens found later. A hyphen without digits on both sides,
// including one at position 0, is not a range and is left alone.
func collapseRanges(text string) string {
	spans := make([]rangeSpan, 0)
	for i := 0; i < len(text); i++ {
		if text[i] != '-' {
			continue
		}

		start := i
		for start > 0 && isDigitOrSpace(text[start-1]) {
			start--
		}
		end := i + 1
		for end < len(text) && isDigitOrSpace(text[end]) {
			end++
		}

		prev := strings.TrimSpace(text[start:i])
		next := strings.TrimSpace(text[i+1 : end])
		if prev == "" || next == "" {
			continue
		}
		first, err := strconv.Atoi(prev)
		if err != nil {
			// Captured span holds several numbers ("5 10-7"), not a range.
			continue
		}
		second, err := strconv.Atoi(next)
		if err != nil {
			continue
		}

		// Trim captured whitespace so the spaces around the range survive
		// the rewrite and "5 - 10 years" becomes "5 years", not "5years".
		for start < i && !isDigit(text[start]) {
			start++
		}
		for end > i+1 && !isDigit(text[end-1]) {
			end--
		}

		repl := first
		if second < repl {
			repl = second
		}
		spans = append(spans, rangeSpan{start: start, end: end, repl: strconv.Itoa(repl)})
	}

	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		if s.start < last {
			// Overlaps a span already applied ("3-5-7").
			continue
		}
		b.WriteString(text[last:s.start])
		b.WriteString(s.repl)
		last = s.end
	}
	b.WriteString(text[last:])
	return b.String()
}

// stripPunctuation removes every delimiter except the space, plus "+", "#"
// and "*", so "c++," reduces to a bare word token before splitting.
func stripPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			c := byte(r)
			if c != ' ' && (isDelimiter(c) || c == '+' || c == '#' || c == '*') {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// experienceNearby reports whether the exact token "experience" occurs within
// the search range of index i, looking backward first.
func experienceNearby(tokens []string, i int) bool {
	low := i - experienceSearchRange
	if low < 0 {
		low = 0
	}
	for j := i - 1; j >= low; j-- {
		if tokens[j] == "experience" {
			return true
		}
	}
	high := i + experienceSearchRange
	if high > len(tokens)-1 {
		high = len(tokens) - 1
	}
	for j := i + 1; j <= high; j++ {
		if tokens[j] == "experience" {
			return true
		}
	}
	return false
}

// maxNumberBehind scans up to numberLookback tokens back from index i and
// returns the largest numeric value found, or cur if none beats it.
func maxNumberBehind(tokens []string, i, cur int) int {
	limit := i - numberLookback
	if limit < 0 {
		limit = 0
	}
	for j := i; j >= limit; j-- {
		if n, ok := numericToken(tokens[j]); ok && n > cur {
			cur = n
		}
	}
	return cur
}

func numericToken(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	for k := 0; k < len(tok); k++ {
		if tok[k] < '0' || tok[k] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDigitOrSpace(c byte) bool {
	return isDigit(c) || c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
