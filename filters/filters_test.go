package filters

import (
	"testing"
	"time"

	"lostfound/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func item(name string, verified bool, claimedBy ...string) models.Item {
	return models.Item{
		Name:       name,
		IsVerified: verified,
		ClaimedBy:  pq.StringArray(claimedBy),
	}
}

func TestVisibleToHidesVerifiedFromUsers(t *testing.T) {
	items := []models.Item{
		item("Blue Backpack", false),
		item("Red Umbrella", true, "alice"),
	}

	// Even the claimant no longer sees a verified item in the browse view:
	// it is resolved.
	visible := VisibleTo(models.RoleUser, "", items)
	assert.Len(t, visible, 1)
	assert.Equal(t, "Blue Backpack", visible[0].Name)

	// The admin table is unfiltered by verification.
	all := VisibleTo(models.RoleAdmin, "", items)
	assert.Len(t, all, 2)
}

func TestMatchesIsCaseInsensitiveSubstring(t *testing.T) {
	it := models.Item{
		Name:            "Blue Backpack",
		Description:     "slightly worn",
		Color:           "navy",
		FoundLocation:   "Library",
		DropOffLocation: "Front Desk",
	}

	assert.True(t, Matches(it, "backpack"))
	assert.True(t, Matches(it, "NAVY"))
	assert.True(t, Matches(it, "front"))
	assert.True(t, Matches(it, "worn"))
	assert.True(t, Matches(it, ""))
	assert.True(t, Matches(it, "  "))
	assert.False(t, Matches(it, "umbrella"))
}

func TestVisibleToAppliesSearchTerm(t *testing.T) {
	items := []models.Item{
		item("Blue Backpack", false),
		item("Red Umbrella", false),
	}

	visible := VisibleTo(models.RoleUser, "umbrella", items)
	assert.Len(t, visible, 1)
	assert.Equal(t, "Red Umbrella", visible[0].Name)
}

func TestClaimedByUser(t *testing.T) {
	items := []models.Item{
		item("Blue Backpack", false, "bob@example.com"),
		item("Red Umbrella", true, "bob@example.com", "alice"),
		item("Green Scarf", false),
	}

	mine := ClaimedByUser("bob@example.com", items)
	assert.Len(t, mine, 2)

	none := ClaimedByUser("carol", items)
	assert.Empty(t, none)
}

func TestSortByRecency(t *testing.T) {
	now := time.Now()
	a := item("oldest", false)
	a.CreatedAt = now.Add(-2 * time.Hour)
	b := item("newest", false)
	b.CreatedAt = now
	c := item("no timestamp", false) // zero CreatedAt sorts last

	sorted := SortByRecency([]models.Item{c, a, b})
	assert.Equal(t, "newest", sorted[0].Name)
	assert.Equal(t, "oldest", sorted[1].Name)
	assert.Equal(t, "no timestamp", sorted[2].Name)
}

func TestSortByRecencyDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	a := item("a", false)
	a.CreatedAt = now.Add(-time.Hour)
	b := item("b", false)
	b.CreatedAt = now

	in := []models.Item{a, b}
	_ = SortByRecency(in)
	assert.Equal(t, "a", in[0].Name)
}
