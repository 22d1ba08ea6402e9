package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog records an admin mutation for auditing. Writes are best-effort:
// a failed log line never fails the operation that produced it.
type ActivityLog struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID      uint           `gorm:"not null;index" json:"admin_id"`
	Action       string         `gorm:"size:100;not null" json:"action"`
	ResourceType string         `gorm:"size:100;not null;index" json:"resource_type"`
	ResourceID   uint           `gorm:"index" json:"resource_id"`
	Changes      datatypes.JSON `gorm:"type:json" json:"changes"`
	IP           string         `gorm:"size:64" json:"ip"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
