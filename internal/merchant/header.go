package merchant

import (
	"strings"

	"github.com/mhulst/bonscan/internal/textutil"
)

// HeaderConfig holds the tunables of the generic header extractor.
type HeaderConfig struct {
	// MaxLines caps the header region when no meta marker is found earlier.
	MaxLines int
	// KeywordScore weights for pass B line scoring.
	UppercaseWeight float64
	LetterDivisor   float64
	LetterScoreCap  float64
	// WindowTokens is how many tokens before a business keyword are kept.
	WindowTokens int
}

func defaultHeaderConfig() HeaderConfig {
	return HeaderConfig{
		MaxLines:        20,
		UppercaseWeight: 2,
		LetterDivisor:   10,
		LetterScoreCap:  3,
		WindowTokens:    3,
	}
}

// metaMarkers end the header region: once the receipt starts talking about
// itself the merchant name is behind us.
var metaMarkers = []string{
	"kassabon", "bonnr", "bon nr", "bonnummer", "kassa", "invoice",
	"factuur", "ticket", "transactie",
}

// businessKeywords are generic business-type words that tend to sit inside a
// shop name ("Bakkerij Jansen", "De Groene Markt").
var businessKeywords = []string{
	"markt", "market", "bakkerij", "bakker", "supermarkt", "slagerij",
	"restaurant", "cafe", "eetcafe", "bistro", "brasserie", "winkel",
	"drogisterij", "apotheek", "tankstation", "bloemen", "kapper",
	"snackbar", "cafetaria", "pizzeria", "boekhandel",
}

// headerBlocklist are metadata words that disqualify a line from being a
// merchant name even when it otherwise looks like one.
var headerBlocklist = []string{
	"datum", "date", "tijd", "time", "totaal", "total", "btw", "bedankt",
	"welkom", "tel", "www", "email", "openingstijden", "adres", "filiaal",
	"klantenservice", "pin", "betaling", "omschrijving", "artikel", "aantal",
	"prijs", "stuks", "korting", "kvk",
}

func containsBlocked(folded string) bool {
	for _, w := range headerBlocklist {
		if containsWord(folded, w) {
			return true
		}
	}
	return false
}

func containsWord(folded, word string) bool {
	idx := 0
	for {
		i := strings.Index(folded[idx:], word)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || folded[i-1] == ' '
		after := i+len(word) == len(folded) || folded[i+len(word)] == ' '
		if before && after {
			return true
		}
		idx = i + len(word)
	}
}

// headerRegion returns the lines before the first meta marker, capped at
// cfg.MaxLines raw lines.
func headerRegion(lines []textutil.Line, cfg HeaderConfig) []textutil.Line {
	region := make([]textutil.Line, 0, len(lines))
	for _, ln := range lines {
		if ln.Idx >= cfg.MaxLines {
			break
		}
		folded := textutil.LowerFold(ln.Text)
		stop := false
		for _, m := range metaMarkers {
			if strings.Contains(folded, m) {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		region = append(region, ln)
	}
	return region
}

// extractHeader guesses a merchant name from the top of the receipt when no
// known brand matched. Pass A looks for a business-type keyword; pass B falls
// back to the most shop-name-looking line.
func extractHeader(lines []textutil.Line, cfg HeaderConfig) string {
	region := headerRegion(lines, cfg)

	// Pass A: keyword line, no digits, not metadata.
	for _, ln := range region {
		if textutil.HasDigit(ln.Text) {
			continue
		}
		folded := textutil.LowerFold(ln.Text)
		if containsBlocked(folded) {
			continue
		}
		tokens := strings.Fields(ln.Text)
		for i, tok := range tokens {
			if !isBusinessKeyword(textutil.LowerFold(tok)) {
				continue
			}
			start := i - cfg.WindowTokens
			if start < 0 {
				start = 0
			}
			return cleanHeaderName(strings.Join(tokens[start:i+1], " "))
		}
	}

	// Pass B: score remaining all-letters lines on case and length.
	best, bestScore := "", 0.0
	for _, ln := range region {
		if textutil.HasDigit(ln.Text) {
			continue
		}
		folded := textutil.LowerFold(ln.Text)
		if folded == "" || containsBlocked(folded) {
			continue
		}
		letters := float64(textutil.LetterCount(ln.Text)) / cfg.LetterDivisor
		if letters > cfg.LetterScoreCap {
			letters = cfg.LetterScoreCap
		}
		score := cfg.UppercaseWeight*textutil.UppercaseRatio(ln.Text) + letters
		if score > bestScore {
			best, bestScore = ln.Text, score
		}
	}
	return cleanHeaderName(best)
}

func isBusinessKeyword(tok string) bool {
	for _, k := range businessKeywords {
		if tok == k {
			return true
		}
	}
	return false
}

// cleanHeaderName drops leading single-letter noise tokens that OCR tends to
// hallucinate at line starts.
func cleanHeaderName(s string) string {
	tokens := strings.Fields(s)
	for len(tokens) > 0 && len([]rune(tokens[0])) == 1 {
		tokens = tokens[1:]
	}
	return strings.Join(tokens, " ")
}
