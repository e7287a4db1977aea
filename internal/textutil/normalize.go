package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	rePunct      = regexp.MustCompile(`[^a-z0-9 ]+`)
	reNonAlnum   = regexp.MustCompile(`[^A-Z0-9]+`)
)

// Normalize collapses noisy whitespace from OCR output.
// Conservative: keeps line breaks; collapses >2 newlines into a single blank line.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var diacriticsFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics removes combining marks: "café" -> "cafe".
// OCR output on Dutch receipts regularly breaks diacritics, so every matcher
// works on the folded form.
func FoldDiacritics(s string) string {
	out, _, err := transform.String(diacriticsFold, s)
	if err != nil {
		return s
	}
	return out
}

// LowerFold is the shared loose normal form for fuzzy matching:
// diacritics stripped, lowercased, punctuation collapsed to single spaces.
func LowerFold(s string) string {
	s = strings.ToLower(FoldDiacritics(s))
	s = rePunct.ReplaceAllString(s, " ")
	return strings.TrimSpace(reMultiSpace.ReplaceAllString(s, " "))
}

// UpperAlnum strips everything but letters and digits and uppercases the rest.
// Used for tax-identifier scanning where spacing is unreliable.
func UpperAlnum(s string) string {
	return reNonAlnum.ReplaceAllString(strings.ToUpper(FoldDiacritics(s)), "")
}

// Line is a trimmed, non-empty line of a receipt, keeping its position in the
// raw text as a proxy for where it sat on the printed receipt.
type Line struct {
	Idx  int
	Text string
}

// Lines splits raw OCR text into trimmed, non-empty lines. Idx is the index
// in the raw split, so blank lines still count toward vertical position.
func Lines(s string) []Line {
	raw := strings.Split(reCRLF.ReplaceAllString(s, "\n"), "\n")
	out := make([]Line, 0, len(raw))
	for i, l := range raw {
		t := strings.TrimSpace(l)
		if t == "" {
			continue
		}
		out = append(out, Line{Idx: i, Text: t})
	}
	return out
}

// LetterRatio returns the share of letters among non-space runes.
func LetterRatio(s string) float64 {
	letters, total := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}

// DigitRatio returns the share of digits among non-space runes.
func DigitRatio(s string) float64 {
	digits, total := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(digits) / float64(total)
}

// UppercaseRatio returns the share of uppercase letters among all letters.
func UppercaseRatio(s string) float64 {
	upper, letters := 0, 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

// HasDigit reports whether s contains any decimal digit.
func HasDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

// LetterCount counts letter runes in s.
func LetterCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
