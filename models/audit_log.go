package models

import "time"

const AuditLogTable = "laf_audit_log"

// Audit actions.
const (
	ActionItemCreate = "item.create"
	ActionItemUpdate = "item.update"
	ActionItemDelete = "item.delete"
	ActionItemVerify = "item.verify"
	ActionUserDelete = "user.delete"
)

// AuditLog records an administrative mutation for later review.
type AuditLog struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ActorID    string    `gorm:"type:uuid;index" json:"actorId"`
	ActorEmail string    `gorm:"size:255" json:"actorEmail"`
	Action     string    `gorm:"size:40;not null;index" json:"action"`
	ItemID     *string   `gorm:"type:uuid;index" json:"itemId,omitempty"`
	Detail     string    `gorm:"type:text" json:"detail,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (AuditLog) TableName() string { return AuditLogTable }
