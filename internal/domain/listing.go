package domain

import (
	"context"
	"time"
)

type ListingStatus string

const (
	ListingDraft      ListingStatus = "DRAFT"
	ListingPublished  ListingStatus = "PUBLISHED"
	ListingAssigned   ListingStatus = "ASSIGNED"
	ListingInProgress ListingStatus = "IN_PROGRESS"
	ListingCompleted  ListingStatus = "COMPLETED"
	ListingCancelled  ListingStatus = "CANCELLED"
)

type Listing struct {
	ID          string
	OwnerID     string
	CategoryID  string
	Title       string
	Description string
	BudgetMin   float64
	BudgetMax   float64
	FinalPrice  float64
	Status      ListingStatus

	PublishedAt *time.Time
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	SoftDeleteInfo
}

type ListingFilters struct {
	OwnerID    string
	CategoryID string
	Statuses   []ListingStatus
	DateFrom   time.Time
	DateTo     time.Time
}

type ListingRepository interface {
	CreateListing(ctx context.Context, listing *Listing) error
	GetListingByID(ctx context.Context, listingID string) (*Listing, error)
	GetListingByIDAny(ctx context.Context, listingID string) (*Listing, error)
	GetListings(ctx context.Context, filters ListingFilters, page, limit int64, sortBy, sortOrder string) ([]*Listing, int64, error)
	UpdateListingStatus(ctx context.Context, listingID string, status ListingStatus, at time.Time) error
}
