// Package totals separates the goods total from the amount actually charged.
//
// Tax breakdowns and card-terminal footers are full of amounts that look like
// totals. Zone detection marks the lines around VAT and payment anchors so
// the basket resolution can ignore them; the paid resolution then works the
// payment region on its own terms.
package totals

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mhulst/bonscan/internal/amount"
	"github.com/mhulst/bonscan/internal/textutil"
)

// Used tells the caller which figure is authoritative.
const (
	UsedPaid    = "paid"
	UsedBasket  = "basket"
	UsedUnknown = "unknown"
)

// Result is the picker's output. Paid and Basket are two-decimal strings,
// empty when not found.
type Result struct {
	Paid   string
	Basket string
	Used   string
}

// Total returns the authoritative figure: the basket total only when no paid
// total was found.
func (r Result) Total() string {
	if r.Used == UsedBasket {
		return r.Basket
	}
	return r.Paid
}

// Config holds the zone windows and selection thresholds.
type Config struct {
	// VAT zone: lines VATZoneBefore..VATZoneAfter around a VAT anchor.
	VATZoneBefore int
	VATZoneAfter  int
	// Payment zone: lines PayZoneBefore..PayZoneAfter around a payment anchor.
	PayZoneBefore int
	PayZoneAfter  int
	// PaidRegionBefore extends the paid-total region above the first anchor.
	PaidRegionBefore int
	// MinAmount filters unit-price fragments out of multi-amount lines.
	MinAmount decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		VATZoneBefore:    1,
		VATZoneAfter:     6,
		PayZoneBefore:    3,
		PayZoneAfter:     10,
		PaidRegionBefore: 2,
		MinAmount:        decimal.New(1, 0),
	}
}

var vatAnchors = []string{"btw"}

var paymentAnchors = []string{
	"pin", "pinnen", "betaling", "betaald", "maestro", "mastercard", "visa",
	"ideal", "vpay", "contant", "kaart", "terminal", "girocard", "bancontact",
}

var totalLabels = []string{"algemeen totaal", "totaal", "te betalen", "total"}

const subtotalLabel = "subtotaal"

type zoneMap struct {
	vat []bool
	pay []bool
}

// Picker resolves basket and paid totals over the same line list.
type Picker struct {
	cfg    Config
	logger *slog.Logger
}

func NewPicker(cfg Config, logger *slog.Logger) *Picker {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinAmount.IsZero() {
		cfg = DefaultConfig()
	}
	return &Picker{cfg: cfg, logger: logger}
}

// Pick extracts the basket and paid totals from receipt text. Like every
// extractor it degrades to empty results, never an error.
func (p *Picker) Pick(text string) Result {
	lines := textutil.Lines(text)
	folded := make([]string, len(lines))
	for i, ln := range lines {
		folded[i] = textutil.LowerFold(ln.Text)
	}
	zones := p.mapZones(folded)

	res := Result{Used: UsedUnknown}
	if v, ok := p.basketTotal(lines, folded, zones); ok {
		res.Basket = v.StringFixed(2)
		res.Used = UsedBasket
	}
	if v, ok := p.paidTotal(lines, folded); ok {
		res.Paid = v.StringFixed(2)
		res.Used = UsedPaid
	}
	p.logger.Debug("totals.pick", "basket", res.Basket, "paid", res.Paid, "used", res.Used)
	return res
}

// mapZones marks lines inside the VAT and payment windows.
func (p *Picker) mapZones(folded []string) zoneMap {
	z := zoneMap{vat: make([]bool, len(folded)), pay: make([]bool, len(folded))}
	for i, f := range folded {
		if containsAnyWord(f, vatAnchors) {
			mark(z.vat, i-p.cfg.VATZoneBefore, i+p.cfg.VATZoneAfter)
		}
		if containsAnyWord(f, paymentAnchors) {
			mark(z.pay, i-p.cfg.PayZoneBefore, i+p.cfg.PayZoneAfter)
		}
	}
	return z
}

func mark(zone []bool, from, to int) {
	if from < 0 {
		from = 0
	}
	for i := from; i <= to && i < len(zone); i++ {
		zone[i] = true
	}
}

// basketTotal finds the goods total outside both zones: labeled same-line
// amount first, then a label with the amount on a neighbor line, then the
// subtotal under the same rules.
func (p *Picker) basketTotal(lines []textutil.Line, folded []string, z zoneMap) (decimal.Decimal, bool) {
	outside := func(i int) bool { return !z.vat[i] && !z.pay[i] }

	// (a) label and amount on the same line
	for i, ln := range lines {
		if !outside(i) || !containsAnyWord(folded[i], totalLabels) {
			continue
		}
		if v, ok := preferredAmount(ln.Text, p.cfg.MinAmount); ok {
			return v, true
		}
	}
	// (b) label on one line, amount on the immediately adjacent line
	for i := range lines {
		if !outside(i) || !containsAnyWord(folded[i], totalLabels) {
			continue
		}
		for _, j := range []int{i + 1, i - 1} {
			if j < 0 || j >= len(lines) || !outside(j) {
				continue
			}
			if v, ok := preferredAmount(lines[j].Text, p.cfg.MinAmount); ok {
				return v, true
			}
		}
	}
	// (c) subtotal fallback
	for i, ln := range lines {
		if !outside(i) || !containsWord(folded[i], subtotalLabel) {
			continue
		}
		if v, ok := preferredAmount(ln.Text, p.cfg.MinAmount); ok {
			return v, true
		}
	}
	return decimal.Decimal{}, false
}

// paidTotal finds the amount actually charged: the region runs from just
// above the first payment anchor to the next VAT anchor or end of text.
func (p *Picker) paidTotal(lines []textutil.Line, folded []string) (decimal.Decimal, bool) {
	anchor := -1
	for i, f := range folded {
		if containsAnyWord(f, paymentAnchors) {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return decimal.Decimal{}, false
	}
	from := anchor - p.cfg.PaidRegionBefore
	if from < 0 {
		from = 0
	}
	to := len(lines)
	for i := anchor + 1; i < len(lines); i++ {
		if containsAnyWord(folded[i], vatAnchors) {
			to = i
			break
		}
	}

	// 1) a labeled total inside the region
	for i := from; i < to; i++ {
		if !containsAnyWord(folded[i], totalLabels) {
			continue
		}
		if v, ok := preferredAmount(lines[i].Text, p.cfg.MinAmount); ok {
			return v, true
		}
	}
	// 2) the last payment-signal line carrying an amount
	for i := to - 1; i >= from; i-- {
		if !containsAnyWord(folded[i], paymentAnchors) {
			continue
		}
		if v, ok := preferredAmount(lines[i].Text, p.cfg.MinAmount); ok {
			return v, true
		}
	}
	// 3) the largest amount >= MinAmount, else 4) the largest of any value
	var maxAny, maxQualified decimal.Decimal
	foundAny, foundQualified := false, false
	for i := from; i < to; i++ {
		for _, c := range amount.Extract(lines[i].Text) {
			if !foundAny || c.Value.GreaterThan(maxAny) {
				maxAny, foundAny = c.Value, true
			}
			if c.Value.GreaterThanOrEqual(p.cfg.MinAmount) &&
				(!foundQualified || c.Value.GreaterThan(maxQualified)) {
				maxQualified, foundQualified = c.Value, true
			}
		}
	}
	if foundQualified {
		return maxQualified, true
	}
	if foundAny {
		return maxAny, true
	}
	return decimal.Decimal{}, false
}

// preferredAmount picks the best amount on a line: the last one at or above
// min (unit-price fragments tend to come first), else the last one at all.
func preferredAmount(line string, min decimal.Decimal) (decimal.Decimal, bool) {
	cands := amount.Extract(line)
	if len(cands) == 0 {
		return decimal.Decimal{}, false
	}
	for i := len(cands) - 1; i >= 0; i-- {
		if cands[i].Value.GreaterThanOrEqual(min) {
			return cands[i].Value, true
		}
	}
	return cands[len(cands)-1].Value, true
}

func containsAnyWord(folded string, words []string) bool {
	for _, w := range words {
		if containsWord(folded, w) {
			return true
		}
	}
	return false
}

// containsWord reports whether word occurs space-delimited in folded text.
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
