package db

import (
	"context"
	"fmt"

	"lostfound/models"
)

func (r *Repo) LogAction(ctx context.Context, actorID, actorEmail, action string, itemID *string, detail string) (*models.AuditLog, error) {
	entry := &models.AuditLog{
		ActorID:    actorID,
		ActorEmail: actorEmail,
		Action:     action,
		ItemID:     itemID,
		Detail:     detail,
	}
	if err := r.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("insert audit log: %w", err)
	}
	return entry, nil
}

func (r *Repo) ListAuditLog(ctx context.Context, page, size int) ([]models.AuditLog, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 200 {
		size = 50
	}
	var entries []models.AuditLog
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&entries).Error
	return entries, err
}
