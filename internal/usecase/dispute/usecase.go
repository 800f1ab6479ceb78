package dispute

import (
	"context"

	"github.com/jaevor/go-nanoid"
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/metrics"
	"github.com/taskora/taskora-listing-service/internal/usecase/attachment"
	disputedto "github.com/taskora/taskora-listing-service/internal/usecase/dto/dispute"
)

// DisputeUsecase tracks disputes raised against a listing. Resolution is
// administrative and never mutates listing or assignment state.
type DisputeUsecase interface {
	CreateDispute(ctx context.Context, input *disputedto.CreateDisputeInput) (*domain.Dispute, error)
	ReviewDispute(ctx context.Context, disputeID string) (*domain.Dispute, error)
	ResolveDispute(ctx context.Context, input *disputedto.ResolveDisputeInput) (*domain.Dispute, error)

	GetDisputeByID(ctx context.Context, disputeID string) (*domain.Dispute, error)
	GetDisputesByListingID(ctx context.Context, listingID string) ([]*domain.Dispute, error)
	GetDisputes(ctx context.Context, page, limit int64, status string) ([]*domain.Dispute, int64, error)
}

type DefaultDisputeUsecase struct {
	DisputeRepo   domain.DisputeRepository
	ListingRepo   domain.ListingRepository
	Attachments   attachment.AttachmentUsecase
	Notifications domain.NotificationGateway
	Metrics       *metrics.LifecycleMetrics

	newID func() string
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	listingRepo domain.ListingRepository,
	attachments attachment.AttachmentUsecase,
	notifications domain.NotificationGateway,
	lifecycleMetrics *metrics.LifecycleMetrics) (*DefaultDisputeUsecase, error) {

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	return &DefaultDisputeUsecase{
		DisputeRepo:   disputeRepo,
		ListingRepo:   listingRepo,
		Attachments:   attachments,
		Notifications: notifications,
		Metrics:       lifecycleMetrics,
		newID:         idGenerator,
	}, nil
}
