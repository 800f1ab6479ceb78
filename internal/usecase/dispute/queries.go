package dispute

import (
	"context"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

func (uc *DefaultDisputeUsecase) GetDisputeByID(ctx context.Context, disputeID string) (*domain.Dispute, error) {
	return uc.DisputeRepo.GetDisputeByID(ctx, disputeID)
}

func (uc *DefaultDisputeUsecase) GetDisputesByListingID(ctx context.Context, listingID string) ([]*domain.Dispute, error) {
	return uc.DisputeRepo.GetDisputesByListingID(ctx, listingID)
}

func (uc *DefaultDisputeUsecase) GetDisputes(ctx context.Context, page, limit int64, status string) ([]*domain.Dispute, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.DisputeRepo.GetDisputes(ctx, page, limit, status)
}
