package listing

import (
	"context"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/metrics"
	listingdto "github.com/taskora/taskora-listing-service/internal/usecase/dto/listing"
)

// ListingUsecase owns the DRAFT -> PUBLISHED -> CANCELLED side of the listing
// state machine. ASSIGNED, IN_PROGRESS and COMPLETED are written only by the
// assignment transition engine.
type ListingUsecase interface {
	CreateListing(ctx context.Context, input *listingdto.CreateListingInput) (*domain.Listing, error)
	PublishListing(ctx context.Context, listingID string) (*domain.Listing, error)
	CancelListing(ctx context.Context, listingID string) (*domain.Listing, error)

	GetListingByID(ctx context.Context, listingID string) (*domain.Listing, error)
	GetListingByIDAny(ctx context.Context, listingID string) (*domain.Listing, error)
	GetListings(ctx context.Context, filters domain.ListingFilters, page, limit int64, sortBy, sortOrder string) ([]*domain.Listing, int64, error)
}

type DefaultListingUsecase struct {
	ListingRepo domain.ListingRepository
	Metrics     *metrics.LifecycleMetrics
}

func NewDefaultListingUsecase(
	listingRepo domain.ListingRepository,
	lifecycleMetrics *metrics.LifecycleMetrics) *DefaultListingUsecase {

	return &DefaultListingUsecase{
		ListingRepo: listingRepo,
		Metrics:     lifecycleMetrics,
	}
}
