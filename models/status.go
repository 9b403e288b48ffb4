package models

import "strings"

// Status is the shared lifecycle enumeration for bookings and enquiries.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// ParseStatus folds case and separators ("In-Progress" -> "in_progress")
// and reports whether the result is a known status. Normalization happens
// here, at the write boundary, and nowhere else.
func ParseStatus(raw string) (Status, bool) {
	folded := strings.ToLower(strings.TrimSpace(raw))
	folded = strings.ReplaceAll(folded, "-", "_")
	folded = strings.ReplaceAll(folded, " ", "_")
	switch s := Status(folded); s {
	case StatusNew, StatusInProgress, StatusComplete:
		return s, true
	}
	return "", false
}
