package models

import (
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

type AssignmentModel struct {
	ID         string                  `gorm:"primaryKey;type:uuid"`
	ListingID  string                  `gorm:"type:uuid;uniqueIndex:idx_assignment_listing"`
	ProposalID string                  `gorm:"type:uuid"`
	AssigneeID string                  `gorm:"type:uuid;index:idx_assignment_assignee"`
	Status     domain.AssignmentStatus `gorm:"index:idx_assignment_status"`

	ProgressNotes   string
	CompletionNotes string
	Rating          int32
	Review          string

	AssignedAt  time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	Listing  ListingModel  `gorm:"foreignKey:ListingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Proposal ProposalModel `gorm:"foreignKey:ProposalID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time
	UpdatedAt time.Time
	SoftDelete
}
