package models

import (
	"time"

	"github.com/lib/pq"
)

const ItemTable = "laf_items"

// Item is a found-object record. ClaimedBy holds the identities (display name
// or email) of users who claimed the item, in claim order, no duplicates.
// FoundDate is a normalized YYYY-MM-DD string; "" means unknown.
type Item struct {
	ID              string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string         `gorm:"size:200;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	Color           string         `gorm:"size:60" json:"color"`
	Size            string         `gorm:"size:60" json:"size"`
	FoundLocation   string         `gorm:"size:200" json:"foundLocation"`
	DropOffLocation string         `gorm:"size:200" json:"dropOffLocation"`
	FoundDate       string         `gorm:"size:10" json:"foundDate"`
	ImageURL        string         `gorm:"size:500" json:"imageUrl"`
	IsVerified      bool           `gorm:"not null;default:false" json:"isVerified"`
	ClaimedBy       pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"claimedBy"`
	CreatedAt       time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (Item) TableName() string { return ItemTable }

// HasClaimant reports whether identity is in the claimant list.
func HasClaimant(list pq.StringArray, identity string) bool {
	for _, c := range list {
		if c == identity {
			return true
		}
	}
	return false
}

// AddClaimant appends identity to the claimant list unless already present.
// The second return value is false when the call was a no-op.
func AddClaimant(list pq.StringArray, identity string) (pq.StringArray, bool) {
	if HasClaimant(list, identity) {
		return list, false
	}
	next := make(pq.StringArray, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, identity)
	return next, true
}

// RemoveClaimant removes exactly identity from the claimant list, preserving
// the order of the remaining members. The second return value is false when
// identity was not present.
func RemoveClaimant(list pq.StringArray, identity string) (pq.StringArray, bool) {
	if !HasClaimant(list, identity) {
		return list, false
	}
	next := make(pq.StringArray, 0, len(list))
	for _, c := range list {
		if c != identity {
			next = append(next, c)
		}
	}
	return next, true
}

// DedupeClaimants drops duplicate identities, keeping first occurrence order.
// Used when the admin table writes the claimant list directly.
func DedupeClaimants(list []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(list))
	for _, c := range list {
		if c != "" && !HasClaimant(out, c) {
			out = append(out, c)
		}
	}
	return out
}
