package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/usecase/assignment"
)

type AssignmentHandler struct {
	Assignments assignment.AssignmentUsecase
}

func NewAssignmentHandler(assignments assignment.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{Assignments: assignments}
}

func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.Assignments.GetAssignmentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentView(found))
}

func (h *AssignmentHandler) GetByListing(w http.ResponseWriter, r *http.Request) {
	found, err := h.Assignments.GetAssignmentByListingID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentView(found))
}

func (h *AssignmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	started, err := h.Assignments.StartAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentView(started))
}

type completeAssignmentRequest struct {
	CompletionNotes string `json:"completion_notes"`
	Rating          int32  `json:"rating"`
	Review          string `json:"review"`
}

func (h *AssignmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req completeAssignmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	completed, err := h.Assignments.CompleteAssignment(r.Context(), chi.URLParam(r, "id"), domain.CompleteAssignmentParams{
		CompletionNotes: req.CompletionNotes,
		Rating:          req.Rating,
		Review:          req.Review,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentView(completed))
}

func (h *AssignmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	cancelled, err := h.Assignments.CancelAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentView(cancelled))
}

type progressNotesRequest struct {
	ProgressNotes string `json:"progress_notes"`
}

func (h *AssignmentHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req progressNotesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Assignments.UpdateProgressNotes(r.Context(), chi.URLParam(r, "id"), req.ProgressNotes); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
