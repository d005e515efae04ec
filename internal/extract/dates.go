package extract

import (
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// Vodafone prints dates without separators ("15Dec25"), occasionally
// spaced or with a full month name. Spaces are stripped before matching
// so the spaced variant collapses into the compact one.
var vodafoneDateLayouts = []string{
	"2Jan06",
	"2Jan2006",
	"2January2006",
}

// normalizeVodafoneDate converts a captured date to ISO YYYY-MM-DD. When
// every layout fails it returns the input unchanged with ok=false so the
// caller can store the raw string rather than invent a value.
func normalizeVodafoneDate(s string) (string, bool) {
	compact := stripSpaces(s)
	for _, layout := range vodafoneDateLayouts {
		if t, err := time.Parse(layout, compact); err == nil {
			return t.Format(isoDate), true
		}
	}
	return s, false
}

// Three bill dates appear in several spaced, dashed, and slashed
// variants across template revisions.
var threeDateLayouts = []string{
	"2 Jan 06",
	"2 January 06",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-06",
	"2/1/06",
	"2/1/2006",
}

// normalizeThreeDate converts a captured Three bill date to ISO
// YYYY-MM-DD, trying each known layout in order. Two-digit years are
// taken to mean the 2000s.
func normalizeThreeDate(s string) (string, bool) {
	cleaned := collapseSpaces(strings.TrimSpace(s))
	for _, layout := range threeDateLayouts {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		if y := t.Year(); y >= 1969 && y < 2000 {
			t = t.AddDate(100, 0, 0)
		}
		return t.Format(isoDate), true
	}
	return s, false
}
