package textutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	in := "ALBERT  HEIJN\r\n\r\n\r\n\r\nTotaal\t3,50   \n"
	want := "ALBERT HEIJN\n\nTotaal 3,50"
	if got := Normalize(in); got != want {
		t.Errorf("Normalize: got %q, want %q", got, want)
	}
}

func TestFoldDiacritics(t *testing.T) {
	tests := []struct{ in, want string }{
		{"café", "cafe"},
		{"Ruïne", "Ruine"},
		{"geen accenten", "geen accenten"},
	}
	for _, tt := range tests {
		if got := FoldDiacritics(tt.in); got != tt.want {
			t.Errorf("FoldDiacritics(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLowerFold(t *testing.T) {
	if got := LowerFold("Café 't Hoekje!"); got != "cafe t hoekje" {
		t.Errorf("LowerFold: got %q", got)
	}
}

func TestUpperAlnum(t *testing.T) {
	if got := UpperAlnum("btw-nr: NL0022.30884.B01"); got != "BTWNRNL002230884B01" {
		t.Errorf("UpperAlnum: got %q", got)
	}
}

func TestLines(t *testing.T) {
	got := Lines("JUMBO\n\n  Brood 2,50  \nTotaal 2,50")
	want := []Line{
		{Idx: 0, Text: "JUMBO"},
		{Idx: 2, Text: "Brood 2,50"},
		{Idx: 3, Text: "Totaal 2,50"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRatios(t *testing.T) {
	if got := LetterRatio("abc123"); got != 0.5 {
		t.Errorf("LetterRatio: got %f, want 0.5", got)
	}
	if got := DigitRatio("abc123"); got != 0.5 {
		t.Errorf("DigitRatio: got %f, want 0.5", got)
	}
	if got := UppercaseRatio("ABcd"); got != 0.5 {
		t.Errorf("UppercaseRatio: got %f, want 0.5", got)
	}
	if UppercaseRatio("1234") != 0 {
		t.Error("UppercaseRatio of digits should be 0")
	}
}
