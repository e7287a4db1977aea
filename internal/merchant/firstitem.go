package merchant

import (
	"regexp"
	"strings"

	"github.com/mhulst/bonscan/internal/amount"
	"github.com/mhulst/bonscan/internal/textutil"
)

// FirstItemConfig holds the tunables of the first-item fallback.
type FirstItemConfig struct {
	// MinLetters is the minimum letter count for a plausible item line.
	MinLetters int
	// MaxNameLen truncates the surrogate merchant name.
	MaxNameLen int
	// ChainScanLines bounds the last-chance literal chain scan.
	ChainScanLines int
}

func defaultFirstItemConfig() FirstItemConfig {
	return FirstItemConfig{
		MinLetters:     3,
		MaxNameLen:     60,
		ChainScanLines: 12,
	}
}

// itemTableMarkers introduce the purchased-items table.
var itemTableMarkers = []string{
	"omschrijving", "artikel", "aantal", "qty", "stuks", "description", "artikelen",
}

var (
	// trailing "2 x 1,99" / price / quantity noise after an item description
	reItemTail = regexp.MustCompile(`(?i)\s+(\d+\s*[x*]\s*)?€?\s*\d{1,3}(?:[.,]\d{3})*[.,]\d{2}\s*$`)
	// leading counters and list markers: "1.", "2x", "*", "-"
	reItemLead = regexp.MustCompile(`^\s*(\d+[.x]?\s+|[*>-]\s*)+`)
)

// extractFirstItem returns the first plausible purchased-item description as
// a merchant surrogate. Last resort before giving up entirely.
func extractFirstItem(lines []textutil.Line, cfg FirstItemConfig) string {
	start := 0
	for i, ln := range lines {
		folded := textutil.LowerFold(ln.Text)
		for _, m := range itemTableMarkers {
			if containsWord(folded, m) {
				start = i + 1
				break
			}
		}
		if start > 0 {
			break
		}
	}

	for i := start; i < len(lines); i++ {
		ln := lines[i]
		if textutil.LetterCount(ln.Text) < cfg.MinLetters {
			continue
		}
		folded := textutil.LowerFold(ln.Text)
		if containsBlocked(folded) {
			continue
		}
		// needs a price on the line itself or right next to it
		if !amount.HasAmount(ln.Text) &&
			!(i+1 < len(lines) && amount.HasAmount(lines[i+1].Text)) &&
			!(i > 0 && amount.HasAmount(lines[i-1].Text)) {
			continue
		}
		name := reItemTail.ReplaceAllString(ln.Text, "")
		name = reItemLead.ReplaceAllString(name, "")
		name = strings.TrimSpace(name)
		if textutil.LetterCount(name) < cfg.MinLetters {
			continue
		}
		if runes := []rune(name); len(runes) > cfg.MaxNameLen {
			name = string(runes[:cfg.MaxNameLen]) + "…"
		}
		return name
	}
	return ""
}

// scanChains checks the top of the receipt for a literal well-known chain
// name as a whole word. Cheapest possible signal, tried dead last.
func scanChains(lines []textutil.Line, reg *Registry, cfg FirstItemConfig) string {
	for _, ln := range lines {
		if ln.Idx >= cfg.ChainScanLines {
			break
		}
		folded := textutil.LowerFold(ln.Text)
		for _, chain := range reg.Chains {
			if containsWord(folded, chain) {
				return brandNameForChain(reg, chain)
			}
		}
	}
	return ""
}

// brandNameForChain maps a chain keyword back to its display name when the
// registry knows the brand, else title-cases the keyword.
func brandNameForChain(reg *Registry, chain string) string {
	for _, b := range reg.Brands {
		for _, alias := range b.Aliases {
			if textutil.LowerFold(alias) == chain {
				return b.Name
			}
		}
	}
	return strings.ToUpper(chain[:1]) + chain[1:]
}
