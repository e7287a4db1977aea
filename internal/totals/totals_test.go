package totals

import (
	"testing"
)

func pick(t *testing.T, text string) Result {
	t.Helper()
	return NewPicker(DefaultConfig(), nil).Pick(text)
}

func TestPickBasketIgnoresVATZone(t *testing.T) {
	text := `KRUIDVAT
Shampoo 3,49
Tandpasta 2,99
Totaal 15,00
Conditioner 8,52
---
BTW 21% 2,61`
	res := pick(t, text)
	if res.Basket != "15.00" {
		t.Errorf("Basket = %q, want 15.00", res.Basket)
	}
	if res.Used != UsedBasket {
		t.Errorf("Used = %q, want %q", res.Used, UsedBasket)
	}
	if got := res.Total(); got != "15.00" {
		t.Errorf("Total() = %q, want 15.00", got)
	}
}

func TestPickPaidWins(t *testing.T) {
	text := `JUMBO
17-03-2024 14:32
Brood 2,19
Melk 1,31
Totaal 3,50
PINNEN 3,50`
	res := pick(t, text)
	if res.Paid != "3.50" {
		t.Errorf("Paid = %q, want 3.50", res.Paid)
	}
	if res.Used != UsedPaid {
		t.Errorf("Used = %q, want %q", res.Used, UsedPaid)
	}
	if got := res.Total(); got != "3.50" {
		t.Errorf("Total() = %q, want 3.50", got)
	}
}

func TestPickLabelOnAdjacentLine(t *testing.T) {
	res := pick(t, "Totaal\n15,00")
	if res.Basket != "15.00" || res.Used != UsedBasket {
		t.Errorf("got Basket=%q Used=%q", res.Basket, res.Used)
	}
}

func TestPickSubtotalFallback(t *testing.T) {
	text := `Subtotaal 12,40
Artikel 1,00
Artikel 2,00
BTW hoog 2,60`
	res := pick(t, text)
	if res.Basket != "12.40" {
		t.Errorf("Basket = %q, want 12.40", res.Basket)
	}
}

func TestPickSkipsUnitPriceFragments(t *testing.T) {
	// the last qualifying amount on the line wins, unit prices come first
	res := pick(t, "Totaal 0,01 24,75")
	if res.Basket != "24.75" {
		t.Errorf("Basket = %q, want 24.75", res.Basket)
	}

	// when nothing reaches the minimum, fall back to the last amount
	res = pick(t, "Totaal 0,30 0,60")
	if res.Basket != "0.60" {
		t.Errorf("Basket = %q, want 0.60", res.Basket)
	}
}

func TestPickPaidFromPaymentLine(t *testing.T) {
	res := pick(t, "Betaald met PIN 25,00")
	if res.Paid != "25.00" || res.Used != UsedPaid {
		t.Errorf("got Paid=%q Used=%q", res.Paid, res.Used)
	}
}

func TestPickPaidRegionStopsAtVAT(t *testing.T) {
	text := `PIN betaling
38,00
BTW 21% 66,60`
	res := pick(t, text)
	if res.Paid != "38.00" {
		t.Errorf("Paid = %q, want 38.00", res.Paid)
	}
}

func TestPickNothing(t *testing.T) {
	res := pick(t, "geen bedragen hier\nalleen tekst")
	if res.Used != UsedUnknown {
		t.Errorf("Used = %q, want %q", res.Used, UsedUnknown)
	}
	if got := res.Total(); got != "" {
		t.Errorf("Total() = %q, want empty", got)
	}
}
