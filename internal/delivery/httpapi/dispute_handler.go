package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/usecase/dispute"
	disputedto "github.com/taskora/taskora-listing-service/internal/usecase/dto/dispute"
)

type DisputeHandler struct {
	Disputes dispute.DisputeUsecase
}

func NewDisputeHandler(disputes dispute.DisputeUsecase) *DisputeHandler {
	return &DisputeHandler{Disputes: disputes}
}

type createDisputeRequest struct {
	RaisedByID  string `json:"raised_by_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Evidence    []struct {
		FileName  string `json:"file_name"`
		FileURL   string `json:"file_url"`
		SizeBytes int64  `json:"size_bytes"`
	} `json:"evidence"`
}

func (h *DisputeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDisputeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := &disputedto.CreateDisputeInput{
		ListingID:   chi.URLParam(r, "id"),
		RaisedByID:  req.RaisedByID,
		Type:        domain.DisputeType(req.Type),
		Description: req.Description,
	}
	for _, evidence := range req.Evidence {
		input.Evidence = append(input.Evidence, disputedto.FileInput{
			FileName:  evidence.FileName,
			FileURL:   evidence.FileURL,
			SizeBytes: evidence.SizeBytes,
		})
	}

	created, err := h.Disputes.CreateDispute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDisputeView(created))
}

func (h *DisputeHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.Disputes.GetDisputeByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDisputeView(found))
}

func (h *DisputeHandler) ListByListing(w http.ResponseWriter, r *http.Request) {
	disputes, err := h.Disputes.GetDisputesByListingID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]disputeView, len(disputes))
	for i, found := range disputes {
		items[i] = toDisputeView(found)
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *DisputeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.ParseInt(query.Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(query.Get("limit"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	disputes, total, err := h.Disputes.GetDisputes(r.Context(), page, limit, query.Get("status"))
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]disputeView, len(disputes))
	for i, found := range disputes {
		items[i] = toDisputeView(found)
	}
	writeJSON(w, http.StatusOK, pagedView[disputeView]{Items: items, Total: total, Page: page, Limit: limit})
}

func (h *DisputeHandler) Review(w http.ResponseWriter, r *http.Request) {
	reviewed, err := h.Disputes.ReviewDispute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDisputeView(reviewed))
}

type resolveDisputeRequest struct {
	ResolverID string `json:"resolver_id"`
	Resolution string `json:"resolution"`
	NewStatus  string `json:"new_status"`
}

func (h *DisputeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveDisputeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resolved, err := h.Disputes.ResolveDispute(r.Context(), &disputedto.ResolveDisputeInput{
		DisputeID:  chi.URLParam(r, "id"),
		ResolverID: req.ResolverID,
		Resolution: req.Resolution,
		NewStatus:  domain.DisputeStatus(req.NewStatus),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDisputeView(resolved))
}
