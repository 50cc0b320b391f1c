package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFoundDate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		valid bool
	}{
		{"canonical passthrough", "2024-03-01", "2024-03-01", true},
		{"rfc3339", "2024-03-01T10:30:00Z", "2024-03-01", true},
		{"iso datetime without zone", "2024-03-01T10:30:00", "2024-03-01", true},
		{"us form", "03-01-2024", "2024-03-01", true},
		{"surrounding whitespace", "  2024-03-01  ", "2024-03-01", true},
		{"impossible calendar date", "2024-02-30", "", false},
		{"not a date", "next tuesday", "", false},
		{"empty", "", "", false},
		{"garbage digits", "9999-99-99", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeFoundDate(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The invalid literal must never survive into a stored value, on either path:
// create stores "", update drops the field.
func TestNormalizeFoundDateNeverEchoesInvalidInput(t *testing.T) {
	got, ok := NormalizeFoundDate("2024-02-30")
	assert.False(t, ok)
	assert.Empty(t, got)
}
