package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRunID creates a standardized, human-readable planning run ID.
// Format: {strategy}-{segmentKey}-{8charHexUUID}
//
// Example:
//   - Input: strategy="premium-push", segmentKey="EU/computer/premium"
//   - Output: "premium-push-EU-computer-premium-a3f8e2b1"
//
// The generated IDs are human-readable with a clear strategy name and
// globally unique via the UUID suffix.
func GenerateRunID(strategy, segmentKey string) string {
	slug := strings.ReplaceAll(segmentKey, "/", "-")
	return strategy + "-" + slug + "-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
