package db

import (
	"context"
	"errors"

	"lostfound/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Claim outcomes that are not failures: the caller reports them as no-ops.
var (
	ErrAlreadyClaimed = errors.New("item already claimed by this user")
	ErrNotClaimed     = errors.New("item not claimed by this user")
)

// ClaimItem appends identity to the item's claimant list. The read and the
// conditional write run in one transaction with the row locked, so two
// overlapping claims converge to a single membership instead of last-write-
// wins on the whole list. Returns ErrAlreadyClaimed when identity is already
// present.
func (r *Repo) ClaimItem(ctx context.Context, itemID, identity string) (*models.Item, error) {
	var it models.Item
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&it, "id = ?", itemID).Error; err != nil {
			return err
		}
		next, changed := models.AddClaimant(it.ClaimedBy, identity)
		if !changed {
			return ErrAlreadyClaimed
		}
		if err := tx.Model(&models.Item{}).
			Where("id = ?", itemID).
			Update("claimed_by", next).Error; err != nil {
			return err
		}
		it.ClaimedBy = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return &it, nil
}

// UnclaimItem removes exactly identity from the claimant list, preserving the
// order of the remaining members. Returns ErrNotClaimed when identity is not
// on the list.
func (r *Repo) UnclaimItem(ctx context.Context, itemID, identity string) (*models.Item, error) {
	var it models.Item
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&it, "id = ?", itemID).Error; err != nil {
			return err
		}
		next, changed := models.RemoveClaimant(it.ClaimedBy, identity)
		if !changed {
			return ErrNotClaimed
		}
		if err := tx.Model(&models.Item{}).
			Where("id = ?", itemID).
			Update("claimed_by", next).Error; err != nil {
			return err
		}
		it.ClaimedBy = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return &it, nil
}
