// Package filters derives the visible item subsets for the browse and
// my-claims views from the full cached item list.
package filters

import (
	"sort"
	"strings"

	"lostfound/models"
)

// Matches reports whether the free-text term matches the item. The match is a
// case-insensitive substring check across name, description, color and both
// locations; an empty term matches everything.
func Matches(it models.Item, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{
		it.Name, it.Description, it.Color, it.FoundLocation, it.DropOffLocation,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// VisibleTo applies the browse-view visibility rule. End users see only
// unverified items: a verified item has been delivered to its claimant and is
// resolved, so it leaves the browse view even for the user who claimed it.
// Admins see everything; the search term still applies.
func VisibleTo(role, term string, items []models.Item) []models.Item {
	var out []models.Item
	for _, it := range items {
		if role != models.RoleAdmin && it.IsVerified {
			continue
		}
		if Matches(it, term) {
			out = append(out, it)
		}
	}
	return out
}

// ClaimedByUser returns the items whose claimant list contains identity,
// regardless of verification state.
func ClaimedByUser(identity string, items []models.Item) []models.Item {
	var out []models.Item
	for _, it := range items {
		if models.HasClaimant(it.ClaimedBy, identity) {
			out = append(out, it)
		}
	}
	return out
}

// SortByRecency orders items newest first, stably. Items without a creation
// timestamp sort as oldest. The input slice is not modified.
func SortByRecency(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
