// Package receiptdate finds the transaction date in receipt OCR text.
//
// Three passes collect candidates (ISO-like, ambiguous numeric, textual
// month names in Dutch and English), each validated against a real calendar
// and scored by pattern reliability, nearby label words and attached time
// tokens. Receipts often print the date near the footer, so later candidates
// win score ties.
package receiptdate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Config holds the scoring weights and search windows of the extractor.
type Config struct {
	// PreferDMY resolves ambiguous numeric triples day-first (European).
	PreferDMY bool

	ISOScore     int // base for YYYY-MM-DD style matches
	NumericScore int // base for ambiguous D-M-Y / M-D-Y matches
	TextualScore int // base for "17 maart 2024" style matches

	LabelBoost      int // label word within LabelRadius characters
	LabelNearBoost  int // label word within LabelNearRadius characters
	LabelRadius     int
	LabelNearRadius int

	TimeBoost  int // time token within TimeRadius characters
	TimeRadius int
}

func DefaultConfig() Config {
	return Config{
		PreferDMY:       true,
		ISOScore:        60,
		NumericScore:    55,
		TextualScore:    65,
		LabelBoost:      15,
		LabelNearBoost:  20,
		LabelRadius:     20,
		LabelNearRadius: 10,
		TimeBoost:       10,
		TimeRadius:      25,
	}
}

// Candidate is one scored date occurrence. Only the top-scoring candidate
// survives extraction.
type Candidate struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	HasTime              bool
	Score                int
	Offset               int
	Context              string
}

// ISODate renders the candidate as YYYY-MM-DD.
func (c Candidate) ISODate() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month, c.Day)
}

// ISO renders the candidate with its time of day when one was attached.
func (c Candidate) ISO() string {
	if !c.HasTime {
		return c.ISODate()
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

var (
	reTime    = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})(?:[:.](\d{2}))?\b`)
	reISO     = regexp.MustCompile(`\b(\d{4})[.\-/\\](\d{1,2})[.\-/\\](\d{1,2})\b`)
	reNumeric = regexp.MustCompile(`\b(\d{1,2})[.\-/\\](\d{1,2})[.\-/\\](\d{2,4})\b`)
	reTextual = regexp.MustCompile(`(?i)\b(\d{1,2})\s+([a-z]{3,9})\.?\s+(\d{2,4})\b`)
	reLabel   = regexp.MustCompile(`(?i)\b(datum|date|tijd)\b`)
)

// monthNames maps Dutch and English month names and abbreviations.
var monthNames = map[string]int{
	"jan": 1, "januari": 1, "january": 1,
	"feb": 2, "februari": 2, "february": 2,
	"mrt": 3, "maart": 3, "mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"mei": 5, "may": 5,
	"jun": 6, "juni": 6, "june": 6,
	"jul": 7, "juli": 7, "july": 7,
	"aug": 8, "augustus": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"okt": 10, "oct": 10, "oktober": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

type timeToken struct {
	hour, minute, second int
	offset               int
}

// Extract returns the best-scoring date candidate in text, or ok=false when
// nothing date-like validates. It never fails on garbage input.
func Extract(text string, cfg Config) (Candidate, bool) {
	return extractAt(text, cfg, time.Now())
}

// extractAt is Extract with an injected clock for the 2-digit-year heuristic.
func extractAt(text string, cfg Config, now time.Time) (Candidate, bool) {
	times := collectTimes(text)
	labels := reLabel.FindAllStringIndex(text, -1)

	var cands []Candidate
	add := func(y, m, d, base, offset int) {
		if !validDate(y, m, d) {
			return
		}
		c := Candidate{Year: y, Month: m, Day: d, Score: base, Offset: offset}
		c.Score += labelBoost(labels, offset, cfg)
		if tt, ok := nearestTime(times, offset, cfg.TimeRadius); ok {
			c.Score += cfg.TimeBoost
			c.Hour, c.Minute, c.Second = tt.hour, tt.minute, tt.second
			c.HasTime = true
		}
		lo, hi := offset-10, offset+20
		if lo < 0 {
			lo = 0
		}
		if hi > len(text) {
			hi = len(text)
		}
		c.Context = text[lo:hi]
		cands = append(cands, c)
	}

	for _, m := range reISO.FindAllStringSubmatchIndex(text, -1) {
		y := atoi(text[m[2]:m[3]])
		mo := atoi(text[m[4]:m[5]])
		d := atoi(text[m[6]:m[7]])
		add(y, mo, d, cfg.ISOScore, m[0])
	}

	for _, m := range reNumeric.FindAllStringSubmatchIndex(text, -1) {
		a := atoi(text[m[2]:m[3]])
		b := atoi(text[m[4]:m[5]])
		y := expandYear(text[m[6]:m[7]], now)
		d, mo := a, b
		if !cfg.PreferDMY {
			d, mo = b, a
		}
		if !validDate(y, mo, d) {
			// flip the ambiguous pair once, no further guessing
			d, mo = mo, d
		}
		add(y, mo, d, cfg.NumericScore, m[0])
	}

	for _, m := range reTextual.FindAllStringSubmatchIndex(text, -1) {
		d := atoi(text[m[2]:m[3]])
		mo, ok := monthNames[strings.ToLower(text[m[4]:m[5]])]
		if !ok {
			continue
		}
		y := expandYear(text[m[6]:m[7]], now)
		add(y, mo, d, cfg.TextualScore, m[0])
	}

	if len(cands) == 0 {
		return Candidate{}, false
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		return cands[i].Offset > cands[j].Offset
	})
	return cands[0], true
}

func collectTimes(text string) []timeToken {
	var out []timeToken
	for _, m := range reTime.FindAllStringSubmatchIndex(text, -1) {
		h := atoi(text[m[2]:m[3]])
		mi := atoi(text[m[4]:m[5]])
		s := 0
		if m[6] >= 0 {
			s = atoi(text[m[6]:m[7]])
		}
		if h > 23 || mi > 59 || s > 59 {
			continue
		}
		out = append(out, timeToken{hour: h, minute: mi, second: s, offset: m[0]})
	}
	return out
}

func nearestTime(times []timeToken, offset, radius int) (timeToken, bool) {
	best, bestDist := timeToken{}, radius + 1
	for _, tt := range times {
		d := tt.offset - offset
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = tt, d
		}
	}
	return best, bestDist <= radius
}

func labelBoost(labels [][]int, offset int, cfg Config) int {
	boost := 0
	for _, l := range labels {
		d := l[0] - offset
		if d < 0 {
			d = -d
		}
		if d <= cfg.LabelNearRadius && cfg.LabelNearBoost > boost {
			boost = cfg.LabelNearBoost
		} else if d <= cfg.LabelRadius && cfg.LabelBoost > boost {
			boost = cfg.LabelBoost
		}
	}
	return boost
}

// expandYear applies the 2-digit-year convention: years within one of the
// current year (mod 100) land in the 2000s, everything else in the 1900s.
// The boundary case is deliberately kept as-is.
func expandYear(s string, now time.Time) int {
	y := atoi(s)
	if len(s) == 4 {
		return y
	}
	cur := now.Year() % 100
	d := y - cur
	if d < 0 {
		d = -d
	}
	if d <= 1 || y <= cur {
		return 2000 + y
	}
	return 1900 + y
}

// validDate round-trips through the calendar: Feb 30 normalizes to a
// different month, so a changed component means the triple was bogus.
func validDate(y, m, d int) bool {
	if y < 1900 || y > 2100 || m < 1 || m > 12 || d < 1 || d > 31 {
		return false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return t.Year() == y && int(t.Month()) == m && t.Day() == d
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
