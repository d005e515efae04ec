package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVodafoneDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "compact", input: "15Dec25", want: "2025-12-15", ok: true},
		{name: "spaced", input: "15 Dec 25", want: "2025-12-15", ok: true},
		{name: "compact four digit year", input: "15Dec2025", want: "2025-12-15", ok: true},
		{name: "full month name", input: "15December2025", want: "2025-12-15", ok: true},
		{name: "single digit day", input: "3Jan26", want: "2026-01-03", ok: true},
		{name: "unparseable returns input", input: "garbage", want: "garbage", ok: false},
		{name: "empty returns input", input: "", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeVodafoneDate(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNormalizeThreeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "short month short year", input: "15 Dec 25", want: "2025-12-15", ok: true},
		{name: "full month short year", input: "15 December 25", want: "2025-12-15", ok: true},
		{name: "short month full year", input: "15 Dec 2025", want: "2025-12-15", ok: true},
		{name: "full month full year", input: "15 December 2025", want: "2025-12-15", ok: true},
		{name: "dashed", input: "15-Dec-25", want: "2025-12-15", ok: true},
		{name: "slashed short year", input: "15/12/25", want: "2025-12-15", ok: true},
		{name: "slashed full year", input: "15/12/2025", want: "2025-12-15", ok: true},
		{name: "extra whitespace collapsed", input: "  15   Dec   25 ", want: "2025-12-15", ok: true},
		{name: "two digit years mean the 2000s", input: "1 Jan 99", want: "2099-01-01", ok: true},
		{name: "unparseable returns input", input: "Bill Date", want: "Bill Date", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeThreeDate(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
