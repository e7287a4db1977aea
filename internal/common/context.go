package common

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyScanID contextKey = "scan_id"
)

// WithScanID adds a scan-attempt ID to the context, minting one when id is
// empty.
func WithScanID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, ContextKeyScanID, id)
}

// ScanIDFromContext extracts the scan-attempt ID from context
func ScanIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyScanID).(string); ok {
		return id
	}
	return ""
}
