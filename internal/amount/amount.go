// Package amount finds monetary values in receipt text lines.
//
// Dutch receipts mix "12,34" and "12.34" styles, sometimes with "1.234,56"
// thousands grouping, so both separators are accepted and the last two-digit
// group is always treated as cents.
package amount

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// reAmount matches an optional currency marker, an integer part (optionally
// thousands-grouped), a decimal separator and exactly two cent digits.
// Group 1: currency marker, group 2: integer part, group 3: cents.
var reAmount = regexp.MustCompile(`(?i)(€\s*|\beur\s*)?(\d{1,3}(?:[.,]\d{3})+|\d+)[.,](\d{2})`)

var reGroupSep = strings.NewReplacer(".", "", ",", "")

// Candidate is one monetary match inside a line. Candidates are ephemeral:
// they are produced and scored within a single extraction pass.
type Candidate struct {
	Value       decimal.Decimal
	Start       int
	End         int
	HasCurrency bool
	Context     string
	LineIdx     int
}

// Text returns the value as a two-decimal string.
func (c Candidate) Text() string {
	return c.Value.StringFixed(2)
}

const contextRadius = 12

// Extract returns every monetary match in line, in text order.
// Matches whose cents run into a longer digit sequence are skipped, as are
// fragments that fail numeric parsing. Extraction never fails.
func Extract(line string) []Candidate {
	return ExtractAt(line, 0)
}

// ExtractAt is Extract with the line's receipt position attached.
func ExtractAt(line string, lineIdx int) []Candidate {
	ms := reAmount.FindAllStringSubmatchIndex(line, -1)
	if ms == nil {
		return nil
	}
	out := make([]Candidate, 0, len(ms))
	for _, m := range ms {
		start, end := m[0], m[1]
		// cents must not be followed by another digit (would be part of a
		// longer number, e.g. a barcode)
		if end < len(line) && line[end] >= '0' && line[end] <= '9' {
			continue
		}
		intPart := reGroupSep.Replace(line[m[4]:m[5]])
		cents := line[m[6]:m[7]]
		v, err := decimal.NewFromString(intPart + "." + cents)
		if err != nil {
			continue // malformed fragment, drop silently
		}
		if v.IsNegative() {
			continue
		}
		lo := start - contextRadius
		if lo < 0 {
			lo = 0
		}
		hi := end + contextRadius
		if hi > len(line) {
			hi = len(line)
		}
		out = append(out, Candidate{
			Value:       v.Round(2),
			Start:       start,
			End:         end,
			HasCurrency: m[2] >= 0,
			Context:     line[lo:hi],
			LineIdx:     lineIdx,
		})
	}
	return out
}

// HasAmount reports whether line contains at least one monetary match.
func HasAmount(line string) bool {
	return len(Extract(line)) > 0
}
