package domain

import (
	"context"
	"time"
)

type DisputeStatus string

const (
	DisputeOpen        DisputeStatus = "OPEN"
	DisputeUnderReview DisputeStatus = "UNDER_REVIEW"
	DisputeResolved    DisputeStatus = "RESOLVED"
	DisputeClosed      DisputeStatus = "CLOSED"
)

type DisputeType string

const (
	DisputeQuality       DisputeType = "QUALITY"
	DisputePayment       DisputeType = "PAYMENT"
	DisputeNoShow        DisputeType = "NO_SHOW"
	DisputeCommunication DisputeType = "COMMUNICATION"
	DisputeOther         DisputeType = "OTHER"
)

// Dispute has a lifecycle independent from the listing and assignment it
// refers to; resolution is administrative and never mutates either.
type Dispute struct {
	ID          string
	ListingID   string
	RaisedByID  string
	Type        DisputeType
	Description string
	Status      DisputeStatus

	Resolution   string
	ResolvedByID string
	ResolvedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	SoftDeleteInfo
}

type DisputeRepository interface {
	CreateDispute(ctx context.Context, dispute *Dispute) error
	GetDisputeByID(ctx context.Context, disputeID string) (*Dispute, error)
	GetDisputesByListingID(ctx context.Context, listingID string) ([]*Dispute, error)
	GetDisputes(ctx context.Context, page, limit int64, status string) ([]*Dispute, int64, error)
	UpdateDisputeStatus(ctx context.Context, disputeID string, status DisputeStatus) error
	ResolveDispute(ctx context.Context, disputeID, resolverID, resolution string, status DisputeStatus, at time.Time) error
}
