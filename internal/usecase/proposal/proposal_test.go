package proposal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/metrics"
	proposaldto "github.com/taskora/taskora-listing-service/internal/usecase/dto/proposal"
)

var testMetrics = metrics.NewLifecycleMetrics()

type fakeListingRepo struct {
	listings map[string]*domain.Listing
}

func (r *fakeListingRepo) CreateListing(_ context.Context, listing *domain.Listing) error {
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetListingByID(_ context.Context, listingID string) (*domain.Listing, error) {
	listing, ok := r.listings[listingID]
	if !ok {
		return nil, domain.NotFoundf("listing %s", listingID)
	}
	return listing, nil
}

func (r *fakeListingRepo) GetListingByIDAny(ctx context.Context, listingID string) (*domain.Listing, error) {
	return r.GetListingByID(ctx, listingID)
}

func (r *fakeListingRepo) GetListings(_ context.Context, _ domain.ListingFilters, _, _ int64, _, _ string) ([]*domain.Listing, int64, error) {
	return nil, 0, nil
}

func (r *fakeListingRepo) UpdateListingStatus(_ context.Context, listingID string, status domain.ListingStatus, _ time.Time) error {
	r.listings[listingID].Status = status
	return nil
}

type fakeProposalRepo struct {
	proposals map[string]*domain.Proposal
}

func newFakeProposalRepo(proposals ...*domain.Proposal) *fakeProposalRepo {
	repo := &fakeProposalRepo{proposals: make(map[string]*domain.Proposal)}
	for _, proposal := range proposals {
		repo.proposals[proposal.ID] = proposal
	}
	return repo
}

func (r *fakeProposalRepo) CreateProposal(_ context.Context, proposal *domain.Proposal) error {
	for _, existing := range r.proposals {
		if existing.ListingID == proposal.ListingID && existing.ProposerID == proposal.ProposerID {
			return domain.Conflictf("proposal already exists")
		}
	}
	r.proposals[proposal.ID] = proposal
	return nil
}

func (r *fakeProposalRepo) GetProposalByID(_ context.Context, proposalID string) (*domain.Proposal, error) {
	proposal, ok := r.proposals[proposalID]
	if !ok {
		return nil, domain.NotFoundf("proposal %s", proposalID)
	}
	return proposal, nil
}

func (r *fakeProposalRepo) GetProposalByListingAndProposer(_ context.Context, listingID, proposerID string) (*domain.Proposal, error) {
	for _, proposal := range r.proposals {
		if proposal.ListingID == listingID && proposal.ProposerID == proposerID {
			return proposal, nil
		}
	}
	return nil, domain.NotFoundf("proposal for listing %s by %s", listingID, proposerID)
}

func (r *fakeProposalRepo) GetProposalsByListingID(_ context.Context, listingID string) ([]*domain.Proposal, error) {
	var result []*domain.Proposal
	for _, proposal := range r.proposals {
		if proposal.ListingID == listingID {
			result = append(result, proposal)
		}
	}
	return result, nil
}

func (r *fakeProposalRepo) GetProposalsByProposerID(_ context.Context, proposerID string, _, _ int64) ([]*domain.Proposal, int64, error) {
	var result []*domain.Proposal
	for _, proposal := range r.proposals {
		if proposal.ProposerID == proposerID {
			result = append(result, proposal)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeProposalRepo) UpdateProposalStatus(_ context.Context, proposalID string, status domain.ProposalStatus, _ time.Time) error {
	proposal, ok := r.proposals[proposalID]
	if !ok {
		return domain.NotFoundf("proposal %s", proposalID)
	}
	proposal.Status = status
	return nil
}

func publishedListing() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*domain.Listing{
		"l1": {ID: "l1", OwnerID: "owner-1", Title: "Paint the house", Status: domain.ListingPublished},
	}}
}

func TestSubmitProposal(t *testing.T) {
	proposalRepo := newFakeProposalRepo()
	uc := NewDefaultProposalUsecase(proposalRepo, publishedListing(), testMetrics)

	submitted, err := uc.SubmitProposal(context.Background(), &proposaldto.SubmitProposalInput{
		ListingID:  "l1",
		ProposerID: "user-2",
		Amount:     250,
	})
	if err != nil {
		t.Fatalf("SubmitProposal: %v", err)
	}
	if submitted.Status != domain.ProposalPending {
		t.Errorf("status = %s, want PENDING", submitted.Status)
	}
	if submitted.AppliedAt.IsZero() {
		t.Error("expected AppliedAt to be set")
	}
	if _, ok := proposalRepo.proposals[submitted.ID]; !ok {
		t.Error("proposal was not persisted")
	}
}

func TestSubmitProposalListingNotOpen(t *testing.T) {
	for _, status := range []domain.ListingStatus{domain.ListingDraft, domain.ListingAssigned, domain.ListingCompleted, domain.ListingCancelled} {
		t.Run(string(status), func(t *testing.T) {
			listingRepo := &fakeListingRepo{listings: map[string]*domain.Listing{
				"l1": {ID: "l1", OwnerID: "owner-1", Status: status},
			}}
			uc := NewDefaultProposalUsecase(newFakeProposalRepo(), listingRepo, testMetrics)

			_, err := uc.SubmitProposal(context.Background(), &proposaldto.SubmitProposalInput{
				ListingID: "l1", ProposerID: "user-2", Amount: 100,
			})
			if !errors.Is(err, domain.ErrInvalidState) {
				t.Errorf("err = %v, want ErrInvalidState", err)
			}
		})
	}
}

func TestSubmitProposalOwnListing(t *testing.T) {
	uc := NewDefaultProposalUsecase(newFakeProposalRepo(), publishedListing(), testMetrics)

	_, err := uc.SubmitProposal(context.Background(), &proposaldto.SubmitProposalInput{
		ListingID: "l1", ProposerID: "owner-1", Amount: 100,
	})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestSubmitProposalDuplicate(t *testing.T) {
	proposalRepo := newFakeProposalRepo(&domain.Proposal{
		ID: "p1", ListingID: "l1", ProposerID: "user-2", Status: domain.ProposalPending,
	})
	uc := NewDefaultProposalUsecase(proposalRepo, publishedListing(), testMetrics)

	_, err := uc.SubmitProposal(context.Background(), &proposaldto.SubmitProposalInput{
		ListingID: "l1", ProposerID: "user-2", Amount: 100,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestSubmitProposalNonPositiveAmount(t *testing.T) {
	uc := NewDefaultProposalUsecase(newFakeProposalRepo(), publishedListing(), testMetrics)

	_, err := uc.SubmitProposal(context.Background(), &proposaldto.SubmitProposalInput{
		ListingID: "l1", ProposerID: "user-2", Amount: 0,
	})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestWithdrawProposal(t *testing.T) {
	proposalRepo := newFakeProposalRepo(&domain.Proposal{
		ID: "p1", ListingID: "l1", ProposerID: "user-2", Status: domain.ProposalPending,
	})
	uc := NewDefaultProposalUsecase(proposalRepo, publishedListing(), testMetrics)

	withdrawn, err := uc.WithdrawProposal(context.Background(), "p1")
	if err != nil {
		t.Fatalf("WithdrawProposal: %v", err)
	}
	if withdrawn.Status != domain.ProposalWithdrawn {
		t.Errorf("status = %s, want WITHDRAWN", withdrawn.Status)
	}
	if withdrawn.WithdrawnAt == nil {
		t.Error("expected WithdrawnAt to be set")
	}
}

func TestWithdrawProposalNotPending(t *testing.T) {
	for _, status := range []domain.ProposalStatus{domain.ProposalAccepted, domain.ProposalRejected, domain.ProposalWithdrawn} {
		t.Run(string(status), func(t *testing.T) {
			proposalRepo := newFakeProposalRepo(&domain.Proposal{ID: "p1", ListingID: "l1", Status: status})
			uc := NewDefaultProposalUsecase(proposalRepo, publishedListing(), testMetrics)

			if _, err := uc.WithdrawProposal(context.Background(), "p1"); !errors.Is(err, domain.ErrInvalidState) {
				t.Errorf("err = %v, want ErrInvalidState", err)
			}
		})
	}
}
