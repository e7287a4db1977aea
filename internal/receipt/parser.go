// Package receipt composes the extraction pipeline into one structured
// result for the expense-creation form.
package receipt

import (
	"log/slog"

	"github.com/mhulst/bonscan/internal/merchant"
	"github.com/mhulst/bonscan/internal/receiptdate"
	"github.com/mhulst/bonscan/internal/textutil"
	"github.com/mhulst/bonscan/internal/totals"
)

// ParsedReceipt is the unified extraction output. Empty fields mean "not
// found" and leave the corresponding form field blank for manual entry.
type ParsedReceipt struct {
	Merchant string `json:"merchant,omitempty"`
	Total    string `json:"total,omitempty"` // two-decimal numeric string
	Date     string `json:"date,omitempty"`  // YYYY-MM-DD
	RawText  string `json:"raw_text"`
}

// Config bundles the sub-extractor configurations.
type Config struct {
	Merchant merchant.Config
	Date     receiptdate.Config
	Totals   totals.Config
}

func DefaultConfig() Config {
	return Config{
		Merchant: merchant.DefaultConfig(),
		Date:     receiptdate.DefaultConfig(),
		Totals:   totals.DefaultConfig(),
	}
}

// Parser runs merchant, date and total extraction over receipt text. Each
// extractor works independently over the full text; no extractor can abort
// the parse.
type Parser struct {
	merchants *merchant.Resolver
	picker    *totals.Picker
	dateCfg   receiptdate.Config
	logger    *slog.Logger
}

func NewParser(reg *merchant.Registry, cfg Config, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Date.ISOScore == 0 {
		cfg = DefaultConfig()
	}
	return &Parser{
		merchants: merchant.NewResolver(reg, cfg.Merchant, logger),
		picker:    totals.NewPicker(cfg.Totals, logger),
		dateCfg:   cfg.Date,
		logger:    logger,
	}
}

// Parse extracts merchant, total and date from raw OCR text. It never fails:
// fields the extractors cannot recover stay empty.
func (p *Parser) Parse(text string) ParsedReceipt {
	normalized := textutil.Normalize(text)

	out := ParsedReceipt{RawText: text}
	out.Merchant = p.merchants.Resolve(normalized)
	if cand, ok := receiptdate.Extract(normalized, p.dateCfg); ok {
		out.Date = cand.ISODate()
	}
	out.Total = p.picker.Pick(normalized).Total()

	p.logger.Info("receipt.parse",
		"merchant", out.Merchant, "date", out.Date, "total", out.Total,
		"text_bytes", len(text),
	)
	return out
}
