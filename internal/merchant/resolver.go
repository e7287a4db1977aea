// Package merchant recovers a merchant name from noisy receipt OCR text.
//
// Resolution is an ordered chain, first success wins, no backtracking:
// tax-identifier lookup, fuzzy alias match, generic header heuristics,
// first purchased item, literal chain scan. Every stage degrades to "not
// found"; the resolver never fails.
package merchant

import (
	"log/slog"

	"github.com/mhulst/bonscan/internal/textutil"
)

// Config bundles the per-stage tunables of the resolution chain.
type Config struct {
	Fuzzy     FuzzyConfig
	Header    HeaderConfig
	FirstItem FirstItemConfig
}

func DefaultConfig() Config {
	return Config{
		Fuzzy:     defaultFuzzyConfig(),
		Header:    defaultHeaderConfig(),
		FirstItem: defaultFirstItemConfig(),
	}
}

// Resolver runs the merchant resolution chain over receipt text.
type Resolver struct {
	reg    *Registry
	cfg    Config
	logger *slog.Logger
}

func NewResolver(reg *Registry, cfg Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Fuzzy.MaxDistanceRatio == 0 {
		cfg.Fuzzy = defaultFuzzyConfig()
	}
	if cfg.Header.MaxLines == 0 {
		cfg.Header = defaultHeaderConfig()
	}
	if cfg.FirstItem.MinLetters == 0 {
		cfg.FirstItem = defaultFirstItemConfig()
	}
	return &Resolver{reg: reg, cfg: cfg, logger: logger}
}

// Resolve returns the merchant name for the receipt text, or "" when all
// stages fail. It never returns an error: a blank merchant just leaves the
// form field empty for manual entry.
func (r *Resolver) Resolve(text string) string {
	if name := matchVAT(text, r.reg); name != "" {
		r.logger.Debug("merchant.resolve", "stage", "vat", "merchant", name)
		return name
	}
	if name := matchFuzzy(text, r.reg, r.cfg.Fuzzy); name != "" {
		r.logger.Debug("merchant.resolve", "stage", "fuzzy", "merchant", name)
		return name
	}
	lines := textutil.Lines(text)
	if name := extractHeader(lines, r.cfg.Header); name != "" {
		r.logger.Debug("merchant.resolve", "stage", "header", "merchant", name)
		return name
	}
	if name := extractFirstItem(lines, r.cfg.FirstItem); name != "" {
		r.logger.Debug("merchant.resolve", "stage", "first_item", "merchant", name)
		return name
	}
	if name := scanChains(lines, r.reg, r.cfg.FirstItem); name != "" {
		r.logger.Debug("merchant.resolve", "stage", "chain", "merchant", name)
		return name
	}
	return ""
}
