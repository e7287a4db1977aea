package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mhulst/bonscan/internal/merchant"
	"github.com/mhulst/bonscan/internal/quality"
	"github.com/mhulst/bonscan/internal/receipt"
)

const sampleReceipt = `JUMBO
Stationsplein 5
1234 AB Utrecht
Brood 2,19
Melk 1,31
Yoghurt 2,05
Subtotaal 5,55
Totaal 5,55
PINNEN 5,55
BTW 9% 0,46
Bedankt voor uw bezoek`

func newTestService(t *testing.T) *Service {
	t.Helper()
	reg, err := merchant.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	parser := receipt.NewParser(reg, receipt.DefaultConfig(), nil)
	return NewService(parser, quality.DefaultOptions(), "", nil)
}

func TestExportDirXLSX(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("alpha.txt", sampleReceipt)
	write("noise.txt", "zzz")
	write("skip.png", "not a text dump")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	buf, err := newTestService(t).ExportDirXLSX(context.Background(), dir)
	if err != nil {
		t.Fatalf("ExportDirXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue("Receipts", ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "Source File" {
		t.Errorf("A1 = %q, want header row", got)
	}

	// alpha.txt parses cleanly
	if got := cell("A2"); got != "alpha.txt" {
		t.Errorf("A2 = %q, want alpha.txt", got)
	}
	if got := cell("B2"); got != "Jumbo" {
		t.Errorf("B2 = %q, want Jumbo", got)
	}
	if got := cell("D2"); got != "5.55" {
		t.Errorf("D2 = %q, want 5.55", got)
	}
	if got := cell("F2"); got != "ok" {
		t.Errorf("F2 = %q, want ok", got)
	}

	// noise.txt is rejected but still reported
	if got := cell("A3"); got != "noise.txt" {
		t.Errorf("A3 = %q, want noise.txt", got)
	}
	if got := cell("B3"); got != "" {
		t.Errorf("B3 = %q, want no merchant for a rejected scan", got)
	}
	if got := cell("F3"); !strings.Contains(got, "too short") {
		t.Errorf("F3 = %q, want the rejection reason", got)
	}

	// the .png and the subdirectory never became rows
	if got := cell("A4"); got != "" {
		t.Errorf("A4 = %q, want no further rows", got)
	}
}

func TestExportDirXLSXMissingDir(t *testing.T) {
	_, err := newTestService(t).ExportDirXLSX(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestExportDirXLSXCancelled(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte(sampleReceipt), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestService(t).ExportDirXLSX(ctx, dir); err == nil {
		t.Fatal("expected a context error")
	}
}
