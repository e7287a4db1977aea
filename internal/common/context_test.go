package common

import (
	"context"
	"testing"
)

func TestScanID(t *testing.T) {
	ctx := WithScanID(context.Background(), "abc-123")
	if got := ScanIDFromContext(ctx); got != "abc-123" {
		t.Errorf("ScanIDFromContext = %q, want abc-123", got)
	}

	// empty id mints a fresh one
	minted := ScanIDFromContext(WithScanID(context.Background(), ""))
	if minted == "" {
		t.Error("expected a minted scan ID")
	}

	if got := ScanIDFromContext(context.Background()); got != "" {
		t.Errorf("bare context should have no scan ID, got %q", got)
	}
}
