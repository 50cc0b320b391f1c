package models

import (
	"strings"
	"time"
)

// FoundDateLayout is the canonical stored form of an item's found date.
const FoundDateLayout = "2006-01-02"

// foundDateLayouts are the accepted input forms, tried in order. The
// canonical layout comes first so already-normalized values pass through.
var foundDateLayouts = []string{
	FoundDateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01-02-2006",
}

// NormalizeFoundDate parses v and returns it in FoundDateLayout form.
// ok is false when v is empty or fails to parse as a real calendar date
// (e.g. "2024-02-30"); callers decide what that means: create stores "",
// update drops the field from the write entirely.
func NormalizeFoundDate(v string) (string, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return "", false
	}
	for _, layout := range foundDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(FoundDateLayout), true
		}
	}
	return "", false
}
