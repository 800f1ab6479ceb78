package listing

import (
	"context"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

func (uc *DefaultListingUsecase) GetListingByID(ctx context.Context, listingID string) (*domain.Listing, error) {
	return uc.ListingRepo.GetListingByID(ctx, listingID)
}

func (uc *DefaultListingUsecase) GetListingByIDAny(ctx context.Context, listingID string) (*domain.Listing, error) {
	return uc.ListingRepo.GetListingByIDAny(ctx, listingID)
}

func (uc *DefaultListingUsecase) GetListings(
	ctx context.Context,
	filters domain.ListingFilters,
	page, limit int64,
	sortBy, sortOrder string,
) ([]*domain.Listing, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.ListingRepo.GetListings(ctx, filters, page, limit, sortBy, sortOrder)
}
