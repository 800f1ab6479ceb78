package models

import (
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

type ListingModel struct {
	ID          string               `gorm:"primaryKey;type:uuid"`
	OwnerID     string               `gorm:"type:uuid;index:idx_listing_owner"`
	CategoryID  string               `gorm:"type:uuid"`
	Title       string
	Description string
	BudgetMin   float64
	BudgetMax   float64
	FinalPrice  float64
	Status      domain.ListingStatus `gorm:"index:idx_listing_status"`

	PublishedAt *time.Time
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time `gorm:"index:idx_listing_created_at"`
	UpdatedAt time.Time
	SoftDelete
}
