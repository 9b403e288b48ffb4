package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// timestampLayout renders UTC instants as ISO-8601 with a trailing "Z",
// microsecond precision.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// NewID returns an opaque 32-character hexadecimal identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// FormatTime renders t in the API timestamp format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Timestamp returns the current time in the API timestamp format.
func Timestamp() string {
	return FormatTime(time.Now())
}
