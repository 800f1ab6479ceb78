package dispute

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/usecase/attachment"
	disputedto "github.com/taskora/taskora-listing-service/internal/usecase/dto/dispute"
)

// CreateDispute opens a dispute against a listing. Permitted at any listing
// status once published.
func (uc *DefaultDisputeUsecase) CreateDispute(ctx context.Context, input *disputedto.CreateDisputeInput) (*domain.Dispute, error) {
	switch input.Type {
	case domain.DisputeQuality, domain.DisputePayment, domain.DisputeNoShow, domain.DisputeCommunication, domain.DisputeOther:
	default:
		return nil, domain.InvalidStatef("unknown dispute type %q", input.Type)
	}

	listing, err := uc.ListingRepo.GetListingByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.Status == domain.ListingDraft {
		return nil, domain.InvalidStatef("disputes require a published listing")
	}
	if input.Description == "" {
		return nil, domain.InvalidStatef("dispute description is required")
	}

	now := time.Now()
	dispute := &domain.Dispute{
		ID:          uc.newID(),
		ListingID:   input.ListingID,
		RaisedByID:  input.RaisedByID,
		Type:        input.Type,
		Description: input.Description,
		Status:      domain.DisputeOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.DisputeRepo.CreateDispute(ctx, dispute); err != nil {
		return nil, err
	}

	if len(input.Evidence) > 0 {
		files := make([]attachment.FileInput, len(input.Evidence))
		for i, evidence := range input.Evidence {
			files[i] = attachment.FileInput{
				FileName:  evidence.FileName,
				FileURL:   evidence.FileURL,
				SizeBytes: evidence.SizeBytes,
			}
		}
		owner := domain.Ref{Kind: domain.KindDispute, ID: dispute.ID}
		if _, err := uc.Attachments.AttachFiles(ctx, owner, files, input.RaisedByID); err != nil {
			slog.Error("failed to attach dispute evidence", "dispute_id", dispute.ID, "error", err.Error())
		}
	}

	uc.Metrics.DisputesOpenGauge.Inc()

	go func(notification domain.Notification) {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uc.Notifications.Notify(notifyCtx, notification); err != nil {
			slog.Error("failed to publish dispute notification", "stage", "creating", "error", err.Error())
		}
	}(domain.Notification{
		Verb:        domain.VerbDisputeOpened,
		SenderID:    input.RaisedByID,
		RecipientID: listing.OwnerID,
		TargetKind:  domain.KindDispute,
		TargetID:    dispute.ID,
		Title:       "Dispute opened",
		Message:     "A dispute was opened on listing " + listing.Title,
	})

	return dispute, nil
}
