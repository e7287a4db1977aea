package receiptdate

import (
	"testing"
	"time"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantISO string
		score   int
		ok      bool
	}{
		{
			name:    "iso with label",
			text:    "Datum: 2024-03-17",
			want:    "2024-03-17",
			wantISO: "2024-03-17",
			score:   80, // base 60 + near-label 20
			ok:      true,
		},
		{
			name:    "dmy with time attached",
			text:    "17-03-2024 14:32",
			want:    "2024-03-17",
			wantISO: "2024-03-17T14:32:00",
			score:   65, // base 55 + time 10
			ok:      true,
		},
		{
			name:    "dutch textual month",
			text:    "Utrecht, 17 maart 2024",
			want:    "2024-03-17",
			wantISO: "2024-03-17",
			score:   65,
			ok:      true,
		},
		{
			name:    "abbreviated month with dot",
			text:    "3 okt. 2023",
			want:    "2023-10-03",
			wantISO: "2023-10-03",
			score:   65,
			ok:      true,
		},
		{
			name: "impossible calendar date",
			text: "30-02-2024",
			ok:   false,
		},
		{
			name: "label without a date",
			text: "datum tijd kassa",
			ok:   false,
		},
		{
			name:    "ambiguous pair flipped once",
			text:    "03-25-2024",
			want:    "2024-03-25",
			wantISO: "2024-03-25",
			score:   55,
			ok:      true,
		},
		{
			name:    "score tie goes to the later occurrence",
			text:    "17-03-2024 kopie 18-03-2024",
			want:    "2024-03-18",
			wantISO: "2024-03-18",
			score:   55,
			ok:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Extract(tt.text, DefaultConfig())
			if ok != tt.ok {
				t.Fatalf("Extract(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got := c.ISODate(); got != tt.want {
				t.Errorf("ISODate() = %q, want %q", got, tt.want)
			}
			if got := c.ISO(); got != tt.wantISO {
				t.Errorf("ISO() = %q, want %q", got, tt.wantISO)
			}
			if c.Score != tt.score {
				t.Errorf("Score = %d, want %d", c.Score, tt.score)
			}
		})
	}
}

func TestExtractDayMonthOrder(t *testing.T) {
	cfg := DefaultConfig()
	c, ok := Extract("03-04-2024", cfg)
	if !ok || c.ISODate() != "2024-04-03" {
		t.Errorf("day-first: got %q, ok=%v", c.ISODate(), ok)
	}

	cfg.PreferDMY = false
	c, ok = Extract("03-04-2024", cfg)
	if !ok || c.ISODate() != "2024-03-04" {
		t.Errorf("month-first: got %q, ok=%v", c.ISODate(), ok)
	}
}

func TestExtractTwoDigitYears(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		text string
		want string
	}{
		{"17-03-24", "2024-03-17"},
		{"17-03-25", "2025-03-17"}, // postdated within one year
		{"17-03-99", "1999-03-17"},
		{"17-03-05", "2005-03-17"},
	}
	for _, tt := range tests {
		c, ok := extractAt(tt.text, DefaultConfig(), now)
		if !ok {
			t.Errorf("extractAt(%q) found nothing", tt.text)
			continue
		}
		if got := c.ISODate(); got != tt.want {
			t.Errorf("extractAt(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractHigherScoreBeatsPosition(t *testing.T) {
	// The labelled date earlier in the text outranks the bare one below it.
	text := "Datum: 17-03-2024\nkopie 18-03-2024"
	c, ok := Extract(text, DefaultConfig())
	if !ok {
		t.Fatal("no candidate found")
	}
	if got := c.ISODate(); got != "2024-03-17" {
		t.Errorf("got %q, want 2024-03-17", got)
	}
}
