// Package category scores transaction titles against a weighted
// keyword/alias model and returns a ranked category shortlist.
package category

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/mhulst/bonscan/constants"
	"github.com/mhulst/bonscan/internal/merchant"
	"github.com/mhulst/bonscan/internal/textutil"
)

// Weights are the scoring contributions per signal kind.
type Weights struct {
	Keyword float64 // one hit per category, does not compound
	Alias   float64 // compounds across brand aliases
	Literal float64 // the category name itself appears in the title
	Recency float64 // flat boost per recently used category
}

func DefaultWeights() Weights {
	return Weights{Keyword: 3, Alias: 1.5, Literal: 2, Recency: 0.75}
}

// Options configures one suggestion call.
type Options struct {
	// Categories is the caller's active category set. Empty means the
	// built-in set.
	Categories []string
	// TopN caps the shortlist, default 3.
	TopN int
}

// Index holds the precompiled word-boundary patterns for one active category
// set. It is immutable after Compile and safe to share between calls.
type Index struct {
	signature string
	keywords  map[string]*regexp.Regexp // category -> keyword alternation
	names     map[string]*regexp.Regexp // category -> literal name pattern
	aliases   []aliasPattern
}

type aliasPattern struct {
	category string
	re       *regexp.Regexp
}

// Compile builds the pattern index for the given active categories.
// Compilation is pure: rebuilding with the same inputs yields an equivalent
// index, so a racing rebuild is harmless.
func Compile(categories []string, reg *merchant.Registry) *Index {
	idx := &Index{
		signature: strings.Join(categories, "\x00"),
		keywords:  make(map[string]*regexp.Regexp, len(categories)),
		names:     make(map[string]*regexp.Regexp, len(categories)),
	}
	active := make(map[string]bool, len(categories))
	for _, c := range categories {
		active[c] = true
	}

	for cat, words := range keywordLists {
		if !active[string(cat)] {
			continue
		}
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = regexp.QuoteMeta(textutil.LowerFold(w))
		}
		idx.keywords[string(cat)] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	for _, c := range categories {
		idx.names[c] = regexp.MustCompile(`\b` + regexp.QuoteMeta(textutil.LowerFold(c)) + `\b`)
	}
	if reg != nil {
		for _, b := range reg.Brands {
			if b.Category == "" || !active[b.Category] {
				continue
			}
			for _, alias := range b.Aliases {
				idx.aliases = append(idx.aliases, aliasPattern{
					category: b.Category,
					re:       regexp.MustCompile(`\b` + regexp.QuoteMeta(textutil.LowerFold(alias)) + `\b`),
				})
			}
		}
	}
	return idx
}

// Suggester ranks categories for transaction titles. The pattern index is
// compiled lazily on first use and reused until the active category set
// changes.
type Suggester struct {
	reg     *merchant.Registry
	weights Weights
	logger  *slog.Logger

	idx *Index
}

func NewSuggester(reg *merchant.Registry, weights Weights, logger *slog.Logger) *Suggester {
	if logger == nil {
		logger = slog.Default()
	}
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	return &Suggester{reg: reg, weights: weights, logger: logger}
}

// Suggest returns up to TopN category names for the title, best first.
// recent is the user's recently used categories, most recent first.
// Identical inputs with an unchanged category set produce identical output.
func (s *Suggester) Suggest(title string, recent []string, opts Options) []string {
	categories := opts.Categories
	if len(categories) == 0 {
		categories = constants.AsStringSlice()
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = 3
	}

	idx := s.index(categories)
	folded := textutil.LowerFold(title)

	scores := make(map[string]float64, len(categories))
	for cat, re := range idx.keywords {
		if re.MatchString(folded) {
			scores[cat] += s.weights.Keyword // one hit per category, no compounding
		}
	}
	for _, ap := range idx.aliases {
		if ap.re.MatchString(folded) {
			scores[ap.category] += s.weights.Alias
		}
	}
	for cat, re := range idx.names {
		if re.MatchString(folded) {
			scores[cat] += s.weights.Literal
		}
	}
	active := make(map[string]bool, len(categories))
	for _, c := range categories {
		active[c] = true
	}
	seen := make(map[string]bool, len(recent))
	for _, r := range recent {
		if !active[r] || seen[r] {
			continue
		}
		seen[r] = true
		scores[r] += s.weights.Recency
	}

	ranked := make([]string, 0, len(scores))
	for cat, sc := range scores {
		if sc > 0 {
			ranked = append(ranked, cat)
		}
	}
	if len(ranked) == 0 {
		// nothing scored: fall back to the fixed priority order
		for _, cat := range constants.FallbackOrder {
			if active[string(cat)] {
				ranked = append(ranked, string(cat))
			}
		}
	} else {
		sort.Slice(ranked, func(i, j int) bool {
			a, b := ranked[i], ranked[j]
			if scores[a] != scores[b] {
				return scores[a] > scores[b]
			}
			ra, rb := constants.FallbackRank(a), constants.FallbackRank(b)
			if ra != rb {
				return ra < rb
			}
			return a < b
		})
	}

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	s.logger.Debug("category.suggest", "title_len", len(title), "top", ranked)
	return ranked
}

// index returns the compiled index for the active set, rebuilding when the
// set changed. Not synchronized: a racing caller briefly using the previous
// index still gets a valid answer.
func (s *Suggester) index(categories []string) *Index {
	sig := strings.Join(categories, "\x00")
	if s.idx != nil && s.idx.signature == sig {
		return s.idx
	}
	idx := Compile(categories, s.reg)
	s.idx = idx
	return idx
}
