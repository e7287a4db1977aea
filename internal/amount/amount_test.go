package amount

import (
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"labeled total", "Totaal €12,34 incl", []string{"12.34"}},
		{"dot decimal", "Totaal 15.00", []string{"15.00"}},
		{"thousands grouping", "Saldo 1.234,56", []string{"1234.56"}},
		{"eur word marker", "EUR 10,00", []string{"10.00"}},
		{"multiple amounts", "2 x 1,99 3,98", []string{"1.99", "3.98"}},
		{"no amounts", "bon 123456", nil},
		{"cents run into longer number", "art 0.123", nil},
		{"plain sentence", "bedankt voor uw bezoek", nil},
		{"amount at line end", "PIN 3,50", []string{"3.50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("Extract(%q): got %d candidates, want %d", tt.input, len(got), len(tt.expected))
			}
			for i, c := range got {
				if c.Text() != tt.expected[i] {
					t.Errorf("candidate %d: got %s, want %s", i, c.Text(), tt.expected[i])
				}
			}
		})
	}
}

func TestExtractCurrencyMarker(t *testing.T) {
	got := Extract("Totaal €12,34")
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if !got[0].HasCurrency {
		t.Error("expected HasCurrency for €12,34")
	}

	got = Extract("Totaal 12,34")
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].HasCurrency {
		t.Error("did not expect HasCurrency for bare 12,34")
	}
}

func TestExtractOffsets(t *testing.T) {
	line := "Melk 1,05 stuks"
	got := Extract(line)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if line[got[0].Start:got[0].End] != "1,05" {
		t.Errorf("offsets select %q, want %q", line[got[0].Start:got[0].End], "1,05")
	}
	if got[0].Context == "" {
		t.Error("expected a context window")
	}
}

func TestExtractAtLineIdx(t *testing.T) {
	got := ExtractAt("Totaal 9,99", 14)
	if len(got) != 1 || got[0].LineIdx != 14 {
		t.Fatalf("LineIdx not propagated: %+v", got)
	}
}
