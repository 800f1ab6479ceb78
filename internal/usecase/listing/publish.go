package listing

import (
	"context"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

func (uc *DefaultListingUsecase) PublishListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	listing, err := uc.ListingRepo.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.Status != domain.ListingDraft {
		return nil, domain.InvalidStatef("only draft listings can be published")
	}

	now := time.Now()
	if err := uc.ListingRepo.UpdateListingStatus(ctx, listingID, domain.ListingPublished, now); err != nil {
		return nil, err
	}

	listing.Status = domain.ListingPublished
	listing.PublishedAt = &now
	listing.UpdatedAt = now

	uc.Metrics.ListingsPublishedTotal.Inc()
	return listing, nil
}
