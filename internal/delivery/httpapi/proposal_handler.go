package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskora/taskora-listing-service/internal/usecase/assignment"
	proposaldto "github.com/taskora/taskora-listing-service/internal/usecase/dto/proposal"
	"github.com/taskora/taskora-listing-service/internal/usecase/proposal"
)

type ProposalHandler struct {
	Proposals   proposal.ProposalUsecase
	Assignments assignment.AssignmentUsecase
}

func NewProposalHandler(
	proposals proposal.ProposalUsecase,
	assignments assignment.AssignmentUsecase) *ProposalHandler {

	return &ProposalHandler{
		Proposals:   proposals,
		Assignments: assignments,
	}
}

type submitProposalRequest struct {
	ProposerID   string  `json:"proposer_id"`
	Amount       float64 `json:"amount"`
	DurationDays int32   `json:"duration_days"`
	Message      string  `json:"message"`
}

func (h *ProposalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitProposalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	submitted, err := h.Proposals.SubmitProposal(r.Context(), &proposaldto.SubmitProposalInput{
		ListingID:    chi.URLParam(r, "id"),
		ProposerID:   req.ProposerID,
		Amount:       req.Amount,
		DurationDays: req.DurationDays,
		Message:      req.Message,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProposalView(submitted))
}

func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.Proposals.GetProposalByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProposalView(found))
}

func (h *ProposalHandler) ListByListing(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.Proposals.GetProposalsByListingID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]proposalView, len(proposals))
	for i, found := range proposals {
		items[i] = toProposalView(found)
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ProposalHandler) ListByProposer(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	proposerID := query.Get("proposer_id")
	if proposerID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "proposer_id is required"})
		return
	}

	page, _ := strconv.ParseInt(query.Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(query.Get("limit"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	proposals, total, err := h.Proposals.GetProposalsByProposerID(r.Context(), proposerID, page, limit)
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]proposalView, len(proposals))
	for i, found := range proposals {
		items[i] = toProposalView(found)
	}
	writeJSON(w, http.StatusOK, pagedView[proposalView]{Items: items, Total: total, Page: page, Limit: limit})
}

func (h *ProposalHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	withdrawn, err := h.Proposals.WithdrawProposal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProposalView(withdrawn))
}

// Accept resolves the whole listing: one winner, siblings bulk-rejected,
// assignment created. A lost race surfaces as 409.
func (h *ProposalHandler) Accept(w http.ResponseWriter, r *http.Request) {
	result, err := h.Assignments.AcceptProposal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Assignment assignmentView `json:"assignment"`
		Proposal   proposalView   `json:"proposal"`
		Listing    listingView    `json:"listing"`
	}{
		Assignment: toAssignmentView(result.Assignment),
		Proposal:   toProposalView(result.AcceptedProposal),
		Listing:    toListingView(result.Listing),
	})
}

func (h *ProposalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	rejected, err := h.Assignments.RejectProposal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProposalView(rejected))
}
