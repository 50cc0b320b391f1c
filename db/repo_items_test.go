package db

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBuildItemUpdatesWhitelist(t *testing.T) {
	updates := buildItemUpdates(map[string]any{
		"name":            "Blue Backpack",
		"dropOffLocation": "Front Desk",
		"createdAt":       "2020-01-01T00:00:00Z", // always discarded
		"id":              "attacker-controlled",
		"bogus":           42,
	})

	assert.Equal(t, map[string]any{
		"name":              "Blue Backpack",
		"drop_off_location": "Front Desk",
	}, updates)
}

// On the update path an unparseable found date is omitted from the write,
// not stored and not nulled. (Create differs: it stores "".)
func TestBuildItemUpdatesDropsInvalidFoundDate(t *testing.T) {
	updates := buildItemUpdates(map[string]any{
		"name":      "Scarf",
		"foundDate": "2024-02-30",
	})

	_, present := updates["found_date"]
	assert.False(t, present)
	assert.Equal(t, "Scarf", updates["name"])
}

func TestBuildItemUpdatesNormalizesFoundDate(t *testing.T) {
	updates := buildItemUpdates(map[string]any{"foundDate": "2024-03-01T10:00:00Z"})
	assert.Equal(t, "2024-03-01", updates["found_date"])
}

func TestBuildItemUpdatesBoolForms(t *testing.T) {
	// JSON sends a bool, the admin table form sends a string.
	assert.Equal(t, true, buildItemUpdates(map[string]any{"isVerified": true})["is_verified"])
	assert.Equal(t, true, buildItemUpdates(map[string]any{"isVerified": "true"})["is_verified"])
	assert.Equal(t, false, buildItemUpdates(map[string]any{"isVerified": "false"})["is_verified"])

	_, present := buildItemUpdates(map[string]any{"isVerified": "maybe"})["is_verified"]
	assert.False(t, present)
}

func TestBuildItemUpdatesClaimedByForms(t *testing.T) {
	// JSON array.
	updates := buildItemUpdates(map[string]any{"claimedBy": []any{"alice", "bob", "alice"}})
	assert.Equal(t, pq.StringArray{"alice", "bob"}, updates["claimed_by"])

	// Admin table CSV string.
	updates = buildItemUpdates(map[string]any{"claimedBy": "alice, bob ,alice"})
	assert.Equal(t, pq.StringArray{"alice", "bob"}, updates["claimed_by"])

	// Explicit clear.
	updates = buildItemUpdates(map[string]any{"claimedBy": ""})
	assert.Equal(t, pq.StringArray{}, updates["claimed_by"])
}
