package assignment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/metrics"
)

var testMetrics = metrics.NewLifecycleMetrics()

// fixture is shared in-memory state emulating the transactional engine:
// every mutating call checks guards against current state, so racing a
// second accept against a settled listing yields ErrConflict just like
// the locked re-read does.
type fixture struct {
	mu          sync.Mutex
	listings    map[string]*domain.Listing
	proposals   map[string]*domain.Proposal
	assignments map[string]*domain.Assignment
	nextID      int
}

func newFixture() *fixture {
	return &fixture{
		listings:    make(map[string]*domain.Listing),
		proposals:   make(map[string]*domain.Proposal),
		assignments: make(map[string]*domain.Assignment),
	}
}

type fakeEngine struct{ f *fixture }

func (e *fakeEngine) AcceptProposal(_ context.Context, proposalID string) (*domain.AcceptanceResult, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()

	proposal, ok := e.f.proposals[proposalID]
	if !ok {
		return nil, domain.NotFoundf("proposal %s", proposalID)
	}
	listing, ok := e.f.listings[proposal.ListingID]
	if !ok {
		return nil, domain.NotFoundf("listing %s", proposal.ListingID)
	}
	for _, existing := range e.f.assignments {
		if existing.ListingID == listing.ID {
			return nil, domain.Conflictf("assignment already exists for listing %s", listing.ID)
		}
	}
	if listing.Status != domain.ListingPublished {
		return nil, domain.InvalidStatef("listing %s is not open", listing.ID)
	}
	if proposal.Status != domain.ProposalPending {
		return nil, domain.InvalidStatef("only pending proposals can be accepted")
	}

	now := time.Now()
	proposal.Status = domain.ProposalAccepted
	proposal.AcceptedAt = &now
	listing.Status = domain.ListingAssigned
	listing.AssignedAt = &now
	listing.FinalPrice = proposal.Amount

	e.f.nextID++
	assignment := &domain.Assignment{
		ID:         fmt.Sprintf("a%d", e.f.nextID),
		ListingID:  listing.ID,
		ProposalID: proposal.ID,
		AssigneeID: proposal.ProposerID,
		Status:     domain.AssignmentAssigned,
		AssignedAt: now,
	}
	e.f.assignments[assignment.ID] = assignment

	var rejected []*domain.Proposal
	for _, sibling := range e.f.proposals {
		if sibling.ListingID == listing.ID && sibling.ID != proposal.ID && sibling.Status == domain.ProposalPending {
			sibling.Status = domain.ProposalRejected
			sibling.RejectedAt = &now
			rejected = append(rejected, sibling)
		}
	}

	return &domain.AcceptanceResult{
		Assignment:        assignment,
		AcceptedProposal:  proposal,
		Listing:           listing,
		RejectedProposals: rejected,
	}, nil
}

func (e *fakeEngine) GetAssignmentByID(_ context.Context, assignmentID string) (*domain.Assignment, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	assignment, ok := e.f.assignments[assignmentID]
	if !ok {
		return nil, domain.NotFoundf("assignment %s", assignmentID)
	}
	return assignment, nil
}

func (e *fakeEngine) GetAssignmentByListingID(_ context.Context, listingID string) (*domain.Assignment, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	for _, assignment := range e.f.assignments {
		if assignment.ListingID == listingID {
			return assignment, nil
		}
	}
	return nil, domain.NotFoundf("assignment for listing %s", listingID)
}

func (e *fakeEngine) StartAssignment(_ context.Context, assignmentID string) (*domain.Assignment, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	assignment, ok := e.f.assignments[assignmentID]
	if !ok {
		return nil, domain.NotFoundf("assignment %s", assignmentID)
	}
	if assignment.Status != domain.AssignmentAssigned {
		return nil, domain.InvalidStatef("only assigned work can be started")
	}
	now := time.Now()
	assignment.Status = domain.AssignmentInProgress
	assignment.StartedAt = &now
	if listing, ok := e.f.listings[assignment.ListingID]; ok {
		listing.Status = domain.ListingInProgress
		listing.StartedAt = &now
	}
	return assignment, nil
}

func (e *fakeEngine) CompleteAssignment(_ context.Context, assignmentID string, params domain.CompleteAssignmentParams) (*domain.Assignment, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	assignment, ok := e.f.assignments[assignmentID]
	if !ok {
		return nil, domain.NotFoundf("assignment %s", assignmentID)
	}
	if assignment.Status != domain.AssignmentInProgress {
		return nil, domain.InvalidStatef("only in-progress work can be completed")
	}
	now := time.Now()
	assignment.Status = domain.AssignmentCompleted
	assignment.CompletedAt = &now
	assignment.CompletionNotes = params.CompletionNotes
	assignment.Rating = params.Rating
	assignment.Review = params.Review
	if listing, ok := e.f.listings[assignment.ListingID]; ok {
		listing.Status = domain.ListingCompleted
		listing.CompletedAt = &now
	}
	return assignment, nil
}

func (e *fakeEngine) CancelAssignment(_ context.Context, assignmentID string) (*domain.Assignment, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	assignment, ok := e.f.assignments[assignmentID]
	if !ok {
		return nil, domain.NotFoundf("assignment %s", assignmentID)
	}
	if assignment.Status != domain.AssignmentAssigned && assignment.Status != domain.AssignmentInProgress {
		return nil, domain.InvalidStatef("assignment %s cannot be cancelled", assignmentID)
	}
	now := time.Now()
	assignment.Status = domain.AssignmentCancelled
	assignment.CancelledAt = &now
	return assignment, nil
}

func (e *fakeEngine) UpdateProgressNotes(_ context.Context, assignmentID, notes string) error {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	assignment, ok := e.f.assignments[assignmentID]
	if !ok {
		return domain.NotFoundf("assignment %s", assignmentID)
	}
	assignment.ProgressNotes = notes
	return nil
}

type fakeProposalRepo struct{ f *fixture }

func (r *fakeProposalRepo) CreateProposal(_ context.Context, proposal *domain.Proposal) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.proposals[proposal.ID] = proposal
	return nil
}

func (r *fakeProposalRepo) GetProposalByID(_ context.Context, proposalID string) (*domain.Proposal, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	proposal, ok := r.f.proposals[proposalID]
	if !ok {
		return nil, domain.NotFoundf("proposal %s", proposalID)
	}
	copied := *proposal
	return &copied, nil
}

func (r *fakeProposalRepo) GetProposalByListingAndProposer(_ context.Context, listingID, proposerID string) (*domain.Proposal, error) {
	return nil, domain.NotFoundf("proposal for listing %s by %s", listingID, proposerID)
}

func (r *fakeProposalRepo) GetProposalsByListingID(_ context.Context, listingID string) ([]*domain.Proposal, error) {
	return nil, nil
}

func (r *fakeProposalRepo) GetProposalsByProposerID(_ context.Context, proposerID string, _, _ int64) ([]*domain.Proposal, int64, error) {
	return nil, 0, nil
}

func (r *fakeProposalRepo) UpdateProposalStatus(_ context.Context, proposalID string, status domain.ProposalStatus, at time.Time) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	proposal, ok := r.f.proposals[proposalID]
	if !ok {
		return domain.NotFoundf("proposal %s", proposalID)
	}
	proposal.Status = status
	return nil
}

type fakeListingRepo struct{ f *fixture }

func (r *fakeListingRepo) CreateListing(_ context.Context, listing *domain.Listing) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetListingByID(_ context.Context, listingID string) (*domain.Listing, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	listing, ok := r.f.listings[listingID]
	if !ok {
		return nil, domain.NotFoundf("listing %s", listingID)
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeListingRepo) GetListingByIDAny(ctx context.Context, listingID string) (*domain.Listing, error) {
	return r.GetListingByID(ctx, listingID)
}

func (r *fakeListingRepo) GetListings(_ context.Context, _ domain.ListingFilters, _, _ int64, _, _ string) ([]*domain.Listing, int64, error) {
	return nil, 0, nil
}

func (r *fakeListingRepo) UpdateListingStatus(_ context.Context, listingID string, status domain.ListingStatus, _ time.Time) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	listing, ok := r.f.listings[listingID]
	if !ok {
		return domain.NotFoundf("listing %s", listingID)
	}
	listing.Status = status
	return nil
}

type fakeNotifier struct{ events chan domain.Notification }

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(chan domain.Notification, 16)}
}

func (n *fakeNotifier) Notify(_ context.Context, notification domain.Notification) error {
	n.events <- notification
	return nil
}

func (n *fakeNotifier) collect(t *testing.T, count int) []domain.Notification {
	t.Helper()
	var got []domain.Notification
	for len(got) < count {
		select {
		case notification := <-n.events:
			got = append(got, notification)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for notifications, got %d of %d", len(got), count)
		}
	}
	return got
}

type fakeChat struct{ calls chan string }

func newFakeChat() *fakeChat {
	return &fakeChat{calls: make(chan string, 16)}
}

func (c *fakeChat) EnsureParticipant(_ context.Context, listingID, userID, role string) error {
	c.calls <- listingID + "/" + userID + "/" + role
	return nil
}

func newTestUsecase(f *fixture) (*DefaultAssignmentUsecase, *fakeNotifier, *fakeChat) {
	notifier := newFakeNotifier()
	chat := newFakeChat()
	uc := NewDefaultAssignmentUsecase(
		&fakeEngine{f: f},
		&fakeProposalRepo{f: f},
		&fakeListingRepo{f: f},
		notifier,
		chat,
		testMetrics,
	)
	return uc, notifier, chat
}

func seedTwoProposals(f *fixture) {
	f.listings["l1"] = &domain.Listing{
		ID: "l1", OwnerID: "owner-1", Title: "Build a deck", Status: domain.ListingPublished,
	}
	f.proposals["pa"] = &domain.Proposal{
		ID: "pa", ListingID: "l1", ProposerID: "user-a", Amount: 400, Status: domain.ProposalPending,
	}
	f.proposals["pb"] = &domain.Proposal{
		ID: "pb", ListingID: "l1", ProposerID: "user-b", Amount: 350, Status: domain.ProposalPending,
	}
}

func TestAcceptProposal(t *testing.T) {
	f := newFixture()
	seedTwoProposals(f)
	uc, notifier, chat := newTestUsecase(f)

	result, err := uc.AcceptProposal(context.Background(), "pb")
	if err != nil {
		t.Fatalf("AcceptProposal: %v", err)
	}

	if result.AcceptedProposal.ID != "pb" || result.AcceptedProposal.Status != domain.ProposalAccepted {
		t.Errorf("accepted = %s %s, want pb ACCEPTED", result.AcceptedProposal.ID, result.AcceptedProposal.Status)
	}
	if result.Listing.Status != domain.ListingAssigned {
		t.Errorf("listing status = %s, want ASSIGNED", result.Listing.Status)
	}
	if result.Listing.FinalPrice != 350 {
		t.Errorf("final price = %v, want the accepted amount 350", result.Listing.FinalPrice)
	}
	if result.Assignment.AssigneeID != "user-b" || result.Assignment.Status != domain.AssignmentAssigned {
		t.Errorf("assignment = %+v, want user-b ASSIGNED", result.Assignment)
	}
	if len(result.RejectedProposals) != 1 || result.RejectedProposals[0].ID != "pa" {
		t.Fatalf("rejected = %+v, want exactly pa", result.RejectedProposals)
	}
	if f.proposals["pa"].Status != domain.ProposalRejected {
		t.Errorf("sibling status = %s, want REJECTED", f.proposals["pa"].Status)
	}
	if len(f.assignments) != 1 {
		t.Errorf("assignments = %d, want exactly 1", len(f.assignments))
	}

	// Side effects: one chat provisioning call, an accepted notification for
	// the winner and a rejected one for the sibling.
	select {
	case call := <-chat.calls:
		if call != "l1/user-b/assignee" {
			t.Errorf("chat call = %s", call)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for chat provisioning")
	}

	byVerb := make(map[string]domain.Notification)
	for _, notification := range notifier.collect(t, 2) {
		byVerb[notification.Verb] = notification
	}
	if accepted, ok := byVerb[domain.VerbProposalAccepted]; !ok || accepted.RecipientID != "user-b" {
		t.Errorf("accepted notification = %+v", accepted)
	}
	if rejected, ok := byVerb[domain.VerbProposalRejected]; !ok || rejected.RecipientID != "user-a" {
		t.Errorf("rejected notification = %+v", rejected)
	}
}

func TestAcceptProposalLoserGetsConflict(t *testing.T) {
	f := newFixture()
	seedTwoProposals(f)
	uc, _, _ := newTestUsecase(f)

	if _, err := uc.AcceptProposal(context.Background(), "pb"); err != nil {
		t.Fatalf("AcceptProposal(pb): %v", err)
	}

	// pa was bulk-rejected by the winning accept, but the listing being
	// settled must surface as a conflict, not as a bad proposal state.
	if _, err := uc.AcceptProposal(context.Background(), "pa"); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestAcceptProposalNotPendingNoAssignment(t *testing.T) {
	f := newFixture()
	seedTwoProposals(f)
	f.proposals["pa"].Status = domain.ProposalWithdrawn
	uc, _, _ := newTestUsecase(f)

	// No assignment exists, so the stale proposal state is the real cause.
	if _, err := uc.AcceptProposal(context.Background(), "pa"); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestAcceptProposalConflict(t *testing.T) {
	f := newFixture()
	seedTwoProposals(f)
	// Simulate a race that got past the pre-check: the assignment exists but
	// pa still reads as pending.
	f.assignments["a0"] = &domain.Assignment{ID: "a0", ListingID: "l1", Status: domain.AssignmentAssigned}
	uc, _, _ := newTestUsecase(f)

	if _, err := uc.AcceptProposal(context.Background(), "pa"); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestAcceptProposalNotFound(t *testing.T) {
	uc, _, _ := newTestUsecase(newFixture())

	if _, err := uc.AcceptProposal(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRejectProposal(t *testing.T) {
	f := newFixture()
	seedTwoProposals(f)
	uc, notifier, _ := newTestUsecase(f)

	rejected, err := uc.RejectProposal(context.Background(), "pa")
	if err != nil {
		t.Fatalf("RejectProposal: %v", err)
	}
	if rejected.Status != domain.ProposalRejected {
		t.Errorf("status = %s, want REJECTED", rejected.Status)
	}
	// The other proposal and the listing are untouched.
	if f.proposals["pb"].Status != domain.ProposalPending {
		t.Errorf("sibling status = %s, want PENDING", f.proposals["pb"].Status)
	}
	if f.listings["l1"].Status != domain.ListingPublished {
		t.Errorf("listing status = %s, want PUBLISHED", f.listings["l1"].Status)
	}

	notifications := notifier.collect(t, 1)
	if notifications[0].Verb != domain.VerbProposalRejected || notifications[0].RecipientID != "user-a" {
		t.Errorf("notification = %+v", notifications[0])
	}
}

func TestRejectProposalNotPending(t *testing.T) {
	f := newFixture()
	seedTwoProposals(f)
	f.proposals["pa"].Status = domain.ProposalWithdrawn
	uc, _, _ := newTestUsecase(f)

	if _, err := uc.RejectProposal(context.Background(), "pa"); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func acceptedFixture(t *testing.T) (*fixture, *DefaultAssignmentUsecase, *fakeNotifier) {
	t.Helper()
	f := newFixture()
	seedTwoProposals(f)
	uc, notifier, _ := newTestUsecase(f)
	if _, err := uc.AcceptProposal(context.Background(), "pb"); err != nil {
		t.Fatalf("AcceptProposal: %v", err)
	}
	return f, uc, notifier
}

func TestStartAssignment(t *testing.T) {
	f, uc, notifier := acceptedFixture(t)

	assignment, err := uc.GetAssignmentByListingID(context.Background(), "l1")
	if err != nil {
		t.Fatalf("GetAssignmentByListingID: %v", err)
	}

	started, err := uc.StartAssignment(context.Background(), assignment.ID)
	if err != nil {
		t.Fatalf("StartAssignment: %v", err)
	}
	if started.Status != domain.AssignmentInProgress {
		t.Errorf("assignment status = %s, want IN_PROGRESS", started.Status)
	}
	if f.listings["l1"].Status != domain.ListingInProgress {
		t.Errorf("listing status = %s, want IN_PROGRESS", f.listings["l1"].Status)
	}

	for _, notification := range notifier.collect(t, 3) {
		if notification.Verb == domain.VerbAssignmentStarted && notification.RecipientID != "owner-1" {
			t.Errorf("started notification recipient = %s, want owner-1", notification.RecipientID)
		}
	}
}

func TestCompleteAssignment(t *testing.T) {
	f, uc, _ := acceptedFixture(t)

	assignment, _ := uc.GetAssignmentByListingID(context.Background(), "l1")
	if _, err := uc.StartAssignment(context.Background(), assignment.ID); err != nil {
		t.Fatalf("StartAssignment: %v", err)
	}

	completed, err := uc.CompleteAssignment(context.Background(), assignment.ID, domain.CompleteAssignmentParams{
		CompletionNotes: "done",
		Rating:          5,
		Review:          "great work",
	})
	if err != nil {
		t.Fatalf("CompleteAssignment: %v", err)
	}
	if completed.Status != domain.AssignmentCompleted || completed.Rating != 5 {
		t.Errorf("completed = %+v", completed)
	}
	if f.listings["l1"].Status != domain.ListingCompleted {
		t.Errorf("listing status = %s, want COMPLETED", f.listings["l1"].Status)
	}
}

func TestCompleteAssignmentInvalidRating(t *testing.T) {
	_, uc, _ := acceptedFixture(t)

	for _, rating := range []int32{-1, 6} {
		if _, err := uc.CompleteAssignment(context.Background(), "a1", domain.CompleteAssignmentParams{Rating: rating}); !errors.Is(err, domain.ErrInvalidState) {
			t.Errorf("rating %d: err = %v, want ErrInvalidState", rating, err)
		}
	}
}

func TestCompleteAssignmentNotStarted(t *testing.T) {
	f, uc, _ := acceptedFixture(t)

	assignment, _ := uc.GetAssignmentByListingID(context.Background(), "l1")
	if _, err := uc.CompleteAssignment(context.Background(), assignment.ID, domain.CompleteAssignmentParams{}); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
	if f.listings["l1"].Status != domain.ListingAssigned {
		t.Errorf("listing status = %s, want ASSIGNED", f.listings["l1"].Status)
	}
}

func TestCancelAssignmentLeavesListing(t *testing.T) {
	f, uc, _ := acceptedFixture(t)

	assignment, _ := uc.GetAssignmentByListingID(context.Background(), "l1")
	cancelled, err := uc.CancelAssignment(context.Background(), assignment.ID)
	if err != nil {
		t.Fatalf("CancelAssignment: %v", err)
	}
	if cancelled.Status != domain.AssignmentCancelled {
		t.Errorf("assignment status = %s, want CANCELLED", cancelled.Status)
	}
	if f.listings["l1"].Status != domain.ListingAssigned {
		t.Errorf("listing status = %s, want untouched ASSIGNED", f.listings["l1"].Status)
	}
}

func TestUpdateProgressNotes(t *testing.T) {
	f, uc, _ := acceptedFixture(t)

	assignment, _ := uc.GetAssignmentByListingID(context.Background(), "l1")
	if err := uc.UpdateProgressNotes(context.Background(), assignment.ID, "halfway there"); err != nil {
		t.Fatalf("UpdateProgressNotes: %v", err)
	}
	if f.assignments[assignment.ID].ProgressNotes != "halfway there" {
		t.Errorf("notes = %q", f.assignments[assignment.ID].ProgressNotes)
	}
}
