package models

import "time"

// SoftDelete is embedded by every model. The cascade controller flips the
// flag; repositories filter on is_deleted by default.
type SoftDelete struct {
	IsDeleted  bool       `gorm:"not null;default:false;index"`
	DeletedAt  *time.Time
	RestoredAt *time.Time
}
