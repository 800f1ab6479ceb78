package models

import (
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

type ProposalModel struct {
	ID           string                `gorm:"primaryKey;type:uuid"`
	ListingID    string                `gorm:"type:uuid;index:idx_proposal_listing;uniqueIndex:idx_proposal_listing_proposer"`
	ProposerID   string                `gorm:"type:uuid;uniqueIndex:idx_proposal_listing_proposer"`
	Amount       float64
	DurationDays int32
	Message      string
	Status       domain.ProposalStatus `gorm:"index:idx_proposal_status"`

	AppliedAt   time.Time
	AcceptedAt  *time.Time
	RejectedAt  *time.Time
	WithdrawnAt *time.Time

	Listing ListingModel `gorm:"foreignKey:ListingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time
	UpdatedAt time.Time
	SoftDelete
}
