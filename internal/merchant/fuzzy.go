package merchant

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/mhulst/bonscan/internal/textutil"
)

// FuzzyConfig holds the tunables of the approximate brand matcher.
type FuzzyConfig struct {
	// MaxDistanceRatio is the accepted Levenshtein distance as a fraction of
	// the alias length.
	MaxDistanceRatio float64
	// WindowOvershoot allows token windows slightly wider than the alias.
	WindowOvershoot int
	// HeaderLines bounds where 2-letter aliases ("AH") are trusted. Short
	// tokens deeper in the body are almost always noise.
	HeaderLines int
}

func defaultFuzzyConfig() FuzzyConfig {
	return FuzzyConfig{
		MaxDistanceRatio: 0.35,
		WindowOvershoot:  2,
		HeaderLines:      8,
	}
}

// matchFuzzy recognizes a known brand by alias, tolerating OCR misreads.
// Literal containment is checked first; otherwise alias-sized token windows
// are compared by edit distance.
func matchFuzzy(text string, reg *Registry, cfg FuzzyConfig) string {
	folded := textutil.LowerFold(text)
	if folded == "" {
		return ""
	}
	tokens := strings.Fields(folded)

	lines := textutil.Lines(text)
	var headTokens map[string]bool
	// tokens appearing in the visual header, for the 2-letter alias rule
	for _, ln := range lines {
		if ln.Idx >= cfg.HeaderLines {
			break
		}
		for _, tok := range strings.Fields(textutil.LowerFold(ln.Text)) {
			if headTokens == nil {
				headTokens = make(map[string]bool)
			}
			headTokens[tok] = true
		}
	}

	for _, b := range reg.Brands {
		for _, alias := range b.Aliases {
			a := textutil.LowerFold(alias)
			if a == "" {
				continue
			}
			if len(a) == 2 {
				// hard-coded header-only rule; do not generalize
				if headTokens[a] {
					return b.Name
				}
				continue
			}
			if strings.Contains(folded, a) {
				return b.Name
			}
			if fuzzyWindowMatch(tokens, a, cfg) {
				return b.Name
			}
		}
	}
	return ""
}

// fuzzyWindowMatch slides token windows of the alias's token count (plus
// overshoot) over the text and accepts any window within the edit budget.
func fuzzyWindowMatch(tokens []string, alias string, cfg FuzzyConfig) bool {
	aliasTokens := len(strings.Fields(alias))
	if aliasTokens == 0 {
		return false
	}
	budget := int(float64(len(alias)) * cfg.MaxDistanceRatio)
	if budget == 0 {
		return false
	}
	for width := aliasTokens; width <= aliasTokens+cfg.WindowOvershoot; width++ {
		for start := 0; start+width <= len(tokens); start++ {
			window := strings.Join(tokens[start:start+width], " ")
			if levenshtein.Distance(window, alias, nil) <= budget {
				return true
			}
		}
	}
	return false
}
