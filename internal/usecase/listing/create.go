package listing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskora/taskora-listing-service/internal/domain"
	listingdto "github.com/taskora/taskora-listing-service/internal/usecase/dto/listing"
)

func (uc *DefaultListingUsecase) CreateListing(ctx context.Context, input *listingdto.CreateListingInput) (*domain.Listing, error) {
	if input.BudgetMin <= 0 || input.BudgetMax <= 0 {
		return nil, domain.InvalidStatef("budget range must be positive")
	}
	if input.BudgetMin > input.BudgetMax {
		return nil, domain.InvalidStatef("budget_min must not exceed budget_max")
	}
	if input.Title == "" {
		return nil, domain.InvalidStatef("title is required")
	}

	now := time.Now()
	listing := &domain.Listing{
		ID:          uuid.NewString(),
		OwnerID:     input.OwnerID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
		Status:      domain.ListingDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.ListingRepo.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	uc.Metrics.ListingsCreatedTotal.Inc()
	return listing, nil
}
