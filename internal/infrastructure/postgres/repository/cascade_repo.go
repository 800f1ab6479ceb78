package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultCascadeStore is the persistence half of the soft-delete cascade
// controller. Relation declarations are static per entity kind; no
// reflection over model attributes.
type DefaultCascadeStore struct {
	DB *gorm.DB
}

func NewDefaultCascadeStore(db *gorm.DB) *DefaultCascadeStore {
	return &DefaultCascadeStore{DB: db}
}

// Relations reads dependents regardless of the deleted flag so that restore
// walks exactly the set a previous delete marked.
func (s *DefaultCascadeStore) Relations(ctx context.Context, ref domain.Ref) ([]domain.Ref, error) {
	db := s.DB.WithContext(ctx)
	var refs []domain.Ref

	collect := func(kind domain.OwnerKind, model any, query string, args ...any) error {
		var ids []string
		if err := db.Model(model).Where(query, args...).Pluck("id", &ids).Error; err != nil {
			return err
		}
		for _, id := range ids {
			refs = append(refs, domain.Ref{Kind: kind, ID: id})
		}
		return nil
	}

	switch ref.Kind {
	case domain.KindListing:
		if err := collect(domain.KindProposal, &models.ProposalModel{}, "listing_id = ?", ref.ID); err != nil {
			return nil, err
		}
		if err := collect(domain.KindAssignment, &models.AssignmentModel{}, "listing_id = ?", ref.ID); err != nil {
			return nil, err
		}
		if err := collect(domain.KindDispute, &models.DisputeModel{}, "listing_id = ?", ref.ID); err != nil {
			return nil, err
		}
		if err := collect(domain.KindAttachment, &models.AttachmentModel{}, "owner_kind = ? AND owner_id = ?", domain.KindListing, ref.ID); err != nil {
			return nil, err
		}
	case domain.KindDispute:
		if err := collect(domain.KindAttachment, &models.AttachmentModel{}, "owner_kind = ? AND owner_id = ?", domain.KindDispute, ref.ID); err != nil {
			return nil, err
		}
	case domain.KindProposal:
		if err := collect(domain.KindAttachment, &models.AttachmentModel{}, "owner_kind = ? AND owner_id = ?", domain.KindProposal, ref.ID); err != nil {
			return nil, err
		}
	case domain.KindAssignment, domain.KindAttachment:
		// leaf kinds
	default:
		return nil, fmt.Errorf("unknown entity kind %q", ref.Kind)
	}

	return refs, nil
}

func (s *DefaultCascadeStore) MarkDeleted(ctx context.Context, refs []domain.Ref, at time.Time) error {
	return s.mark(ctx, refs, map[string]any{
		"is_deleted": true,
		"deleted_at": at,
		"updated_at": at,
	})
}

func (s *DefaultCascadeStore) MarkRestored(ctx context.Context, refs []domain.Ref, at time.Time) error {
	return s.mark(ctx, refs, map[string]any{
		"is_deleted":  false,
		"restored_at": at,
		"updated_at":  at,
	})
}

// mark applies the flag to the whole closure in one transaction, grouped by
// table so each kind is a single bulk update.
func (s *DefaultCascadeStore) mark(ctx context.Context, refs []domain.Ref, updates map[string]any) error {
	byKind := make(map[domain.OwnerKind][]string)
	for _, ref := range refs {
		byKind[ref.Kind] = append(byKind[ref.Kind], ref.ID)
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for kind, ids := range byKind {
			model, err := modelFor(kind)
			if err != nil {
				return err
			}
			if err := tx.Model(model).Where("id IN (?)", ids).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// HardDelete permanently removes a single row, bypassing cascade. Used only
// by the administrative purge path.
func (s *DefaultCascadeStore) HardDelete(ctx context.Context, ref domain.Ref) error {
	model, err := modelFor(ref.Kind)
	if err != nil {
		return err
	}
	result := s.DB.WithContext(ctx).Where("id = ?", ref.ID).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("%s %s", ref.Kind, ref.ID)
	}
	return nil
}

func modelFor(kind domain.OwnerKind) (any, error) {
	switch kind {
	case domain.KindListing:
		return &models.ListingModel{}, nil
	case domain.KindProposal:
		return &models.ProposalModel{}, nil
	case domain.KindAssignment:
		return &models.AssignmentModel{}, nil
	case domain.KindDispute:
		return &models.DisputeModel{}, nil
	case domain.KindAttachment:
		return &models.AttachmentModel{}, nil
	default:
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
}
