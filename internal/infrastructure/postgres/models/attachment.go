package models

import (
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

type AttachmentModel struct {
	ID         string           `gorm:"primaryKey;type:uuid"`
	OwnerKind  domain.OwnerKind `gorm:"index:idx_attachment_owner"`
	OwnerID    string           `gorm:"type:uuid;index:idx_attachment_owner"`
	UploaderID string           `gorm:"type:uuid"`
	FileName   string
	FileURL    string
	SizeBytes  int64

	CreatedAt time.Time
	UpdatedAt time.Time
	SoftDelete
}
