package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// fence is an ordered chain of candidate patterns for one logical field.
// Patterns are tried in declaration order and the first match wins, so a
// chain reads top to bottom from the most specific layout to the loosest
// fallback.
type fence struct {
	field    string
	patterns []*regexp.Regexp
}

func newFence(field string, patterns ...string) fence {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return fence{field: field, patterns: compiled}
}

// find returns the submatches of the first pattern in the chain that
// matches text.
func (f fence) find(text string) ([]string, bool) {
	for _, re := range f.patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m, true
		}
	}
	return nil, false
}

// amount parses a captured currency figure, stripping thousands
// separators. Captures come from [\d,.] character classes, so a parse
// failure means an empty capture; zero is the right answer there.
func amount(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	return v
}

// signedAmount negates the figure when the credit marker preceded it.
func signedAmount(marker, s string) float64 {
	v := amount(s)
	if marker != "" {
		return -v
	}
	return v
}

// collapseSpaces trims and folds runs of whitespace to single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripSpaces removes all whitespace, used for values the layout breaks
// across columns (account numbers, phone numbers).
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
