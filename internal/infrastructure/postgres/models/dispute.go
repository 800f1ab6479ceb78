package models

import (
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

type DisputeModel struct {
	ID          string               `gorm:"primaryKey"`
	ListingID   string               `gorm:"type:uuid;index:idx_dispute_listing"`
	RaisedByID  string               `gorm:"type:uuid"`
	Type        domain.DisputeType
	Description string
	Status      domain.DisputeStatus `gorm:"index:idx_dispute_status"`

	Resolution   string
	ResolvedByID string
	ResolvedAt   *time.Time

	Listing ListingModel `gorm:"foreignKey:ListingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time
	UpdatedAt time.Time
	SoftDelete
}
