package listing

import (
	"context"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

// CancelListing cancels the listing only. If an assignment already exists it
// is left untouched; cancelling it is a separate explicit call.
func (uc *DefaultListingUsecase) CancelListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	listing, err := uc.ListingRepo.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.Status != domain.ListingPublished && listing.Status != domain.ListingAssigned {
		return nil, domain.InvalidStatef("only published or assigned listings can be cancelled")
	}

	now := time.Now()
	if err := uc.ListingRepo.UpdateListingStatus(ctx, listingID, domain.ListingCancelled, now); err != nil {
		return nil, err
	}

	listing.Status = domain.ListingCancelled
	listing.CancelledAt = &now
	listing.UpdatedAt = now

	uc.Metrics.ListingsCancelledTotal.Inc()
	return listing, nil
}
