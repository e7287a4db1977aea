// Package quality rejects OCR output that is too noisy to feed the parsers.
//
// The gate is the only component in the pipeline that fails: everything
// downstream degrades to empty fields, but running the extractors over
// garbage wastes the user's time on a form full of nonsense. Rejection is
// terminal for this scan attempt; the caller may re-run OCR with different
// preprocessing.
package quality

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mhulst/bonscan/internal/amount"
	"github.com/mhulst/bonscan/internal/textutil"
)

// Options configures the gate. Zero values fall back to the defaults
// documented on each field.
type Options struct {
	MinScore int // composite threshold, default 50
	MinLines int // default 6
	MinChars int // default 80

	// RequireAmount fails text without a single monetary match.
	RequireAmount bool
	// RequireSignals fails text without any recognized receipt vocabulary.
	RequireSignals bool
}

// DefaultOptions returns the gate defaults.
func DefaultOptions() Options {
	return Options{
		MinScore:       50,
		MinLines:       6,
		MinChars:       80,
		RequireAmount:  true,
		RequireSignals: true,
	}
}

// GateError is the terminal, user-facing rejection. Reason is a short
// diagnostic string; Score is the composite score at the time of failure,
// kept for telemetry.
type GateError struct {
	Reason string
	Score  int
}

func (e *GateError) Error() string {
	return fmt.Sprintf("unusable receipt text: %s (score %d)", e.Reason, e.Score)
}

// hard-failure bounds; see Check
const (
	minAlphaRatio        = 0.20
	maxSingleTokenRatio  = 0.40
	digitBandLow         = 0.05
	digitBandHigh        = 0.40
	confidenceMaxBoost   = 15
	vocabularyMaxBoost   = 25
	amountMaxBoost       = 15
	lineCountMaxBoost    = 10
	garbageTokenMinLen   = 6
	garbageTokenPenalty  = 30
	singleTokenPenalty   = 25
	signalPoints         = 5
)

// vocabulary is receipt wording in Dutch and English. One hit each.
var vocabulary = []string{
	"totaal", "total", "subtotaal", "btw", "bon", "kassa", "datum", "bedankt",
	"pin", "betaald", "betaling", "contant", "korting", "bezoek", "artikelen",
	"receipt", "thank", "change", "cash", "amount", "vat", "invoice", "euro",
}

var (
	rePostal = regexp.MustCompile(`\b\d{4}\s?[A-Za-z]{2}\b`)
	rePhone  = regexp.MustCompile(`\b0\d{1,2}[- ]?\d{7,8}\b`)
)

// Check computes the composite legibility score and returns a *GateError when
// the text must be rejected. confidence is the OCR engine's own 0-100 score;
// pass a negative value when the engine did not supply one.
func Check(text string, confidence float64, opts Options) error {
	if opts.MinScore == 0 {
		opts.MinScore = 50
	}
	if opts.MinLines == 0 {
		opts.MinLines = 6
	}
	if opts.MinChars == 0 {
		opts.MinChars = 80
	}

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < opts.MinChars {
		return &GateError{Reason: fmt.Sprintf("text too short: %d chars, need %d", len(trimmed), opts.MinChars), Score: 0}
	}
	lines := textutil.Lines(text)
	if len(lines) < opts.MinLines {
		return &GateError{Reason: fmt.Sprintf("too few lines: %d, need %d", len(lines), opts.MinLines), Score: 0}
	}

	letterRatio := textutil.LetterRatio(trimmed)
	digitRatio := textutil.DigitRatio(trimmed)
	tokens := strings.Fields(trimmed)
	singleRatio := singleCharTokenRatio(tokens)
	garbageRatio := garbageTokenRatio(tokens)
	vocabHits, structureHits := countSignals(trimmed)
	amountHits := countAmounts(lines)

	score := compositeScore(letterRatio, digitRatio, singleRatio, garbageRatio,
		vocabHits, structureHits, amountHits, len(lines), confidence)

	if letterRatio < minAlphaRatio {
		return &GateError{Reason: fmt.Sprintf("alphabetic ratio %.0f%% below %.0f%%", letterRatio*100, minAlphaRatio*100), Score: score}
	}
	if singleRatio > maxSingleTokenRatio {
		return &GateError{Reason: fmt.Sprintf("single-character tokens %.0f%% above %.0f%%", singleRatio*100, maxSingleTokenRatio*100), Score: score}
	}
	if opts.RequireSignals && vocabHits+structureHits == 0 {
		return &GateError{Reason: "no recognizable receipt wording", Score: score}
	}
	if opts.RequireAmount && amountHits == 0 {
		return &GateError{Reason: "no monetary amounts found", Score: score}
	}
	if score < opts.MinScore {
		return &GateError{Reason: fmt.Sprintf("legibility score %d below %d", score, opts.MinScore), Score: score}
	}
	return nil
}

// Score computes the composite score without gating, for telemetry and the
// export report.
func Score(text string, confidence float64) int {
	trimmed := strings.TrimSpace(text)
	lines := textutil.Lines(text)
	tokens := strings.Fields(trimmed)
	vocabHits, structureHits := countSignals(trimmed)
	return compositeScore(
		textutil.LetterRatio(trimmed),
		textutil.DigitRatio(trimmed),
		singleCharTokenRatio(tokens),
		garbageTokenRatio(tokens),
		vocabHits, structureHits,
		countAmounts(lines),
		len(lines),
		confidence,
	)
}

func compositeScore(letterRatio, digitRatio, singleRatio, garbageRatio float64,
	vocabHits, structureHits, amountHits, lineCount int, confidence float64) int {

	s := 0.0

	// letter density carries the base: fully alphabetic text maxes at 30
	s += 30 * clamp01((letterRatio-minAlphaRatio)/(1-minAlphaRatio))

	// digits are expected on a receipt, but only within a band
	if digitRatio >= digitBandLow && digitRatio <= digitBandHigh {
		s += 10
	}

	s -= singleTokenPenalty * clamp01(singleRatio/maxSingleTokenRatio)
	s -= garbageTokenPenalty * garbageRatio

	v := float64(vocabHits+structureHits) * signalPoints
	if v > vocabularyMaxBoost {
		v = vocabularyMaxBoost
	}
	s += v

	a := float64(amountHits * 3)
	if a > amountMaxBoost {
		a = amountMaxBoost
	}
	s += a

	l := float64(lineCount) / 2
	if l > lineCountMaxBoost {
		l = lineCountMaxBoost
	}
	s += l

	if confidence >= 0 {
		s += confidenceMaxBoost * clamp01(confidence/100)
	}

	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return int(s)
}

func singleCharTokenRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	n := 0
	for _, t := range tokens {
		if len([]rune(t)) == 1 {
			n++
		}
	}
	return float64(n) / float64(len(tokens))
}

// garbageTokenRatio measures long letter runs with no vowel, which real words
// in Dutch or English essentially never are.
func garbageTokenRatio(tokens []string) float64 {
	long, garbage := 0, 0
	for _, t := range tokens {
		letters := 0
		hasVowel := false
		for _, r := range strings.ToLower(t) {
			if !unicode.IsLetter(r) {
				continue
			}
			letters++
			if strings.ContainsRune("aeiouy", r) {
				hasVowel = true
			}
		}
		if letters < garbageTokenMinLen {
			continue
		}
		long++
		if !hasVowel {
			garbage++
		}
	}
	if long == 0 {
		return 0
	}
	return float64(garbage) / float64(long)
}

func countSignals(text string) (vocabHits, structureHits int) {
	folded := textutil.LowerFold(text)
	for _, w := range vocabulary {
		if strings.Contains(folded, w) {
			vocabHits++
		}
	}
	if rePostal.MatchString(text) {
		structureHits++
	}
	if rePhone.MatchString(text) {
		structureHits++
	}
	if strings.ContainsRune(text, '€') {
		structureHits++
	}
	return vocabHits, structureHits
}

func countAmounts(lines []textutil.Line) int {
	n := 0
	for _, ln := range lines {
		n += len(amount.Extract(ln.Text))
	}
	return n
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
