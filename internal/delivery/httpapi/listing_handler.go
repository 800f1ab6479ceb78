package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/usecase/attachment"
	"github.com/taskora/taskora-listing-service/internal/usecase/cascade"
	listingdto "github.com/taskora/taskora-listing-service/internal/usecase/dto/listing"
	"github.com/taskora/taskora-listing-service/internal/usecase/listing"
)

type ListingHandler struct {
	Listings    listing.ListingUsecase
	Attachments attachment.AttachmentUsecase
	Cascade     *cascade.Controller
}

func NewListingHandler(
	listings listing.ListingUsecase,
	attachments attachment.AttachmentUsecase,
	cascadeController *cascade.Controller) *ListingHandler {

	return &ListingHandler{
		Listings:    listings,
		Attachments: attachments,
		Cascade:     cascadeController,
	}
}

type createListingRequest struct {
	OwnerID     string  `json:"owner_id"`
	CategoryID  string  `json:"category_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	BudgetMin   float64 `json:"budget_min"`
	BudgetMax   float64 `json:"budget_max"`
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.Listings.CreateListing(r.Context(), &listingdto.CreateListingInput{
		OwnerID:     req.OwnerID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListingView(created))
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.Listings.GetListingByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingView(found))
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := domain.ListingFilters{
		OwnerID:    query.Get("owner_id"),
		CategoryID: query.Get("category_id"),
	}
	if status := query.Get("status"); status != "" {
		filters.Statuses = []domain.ListingStatus{domain.ListingStatus(status)}
	}

	page, _ := strconv.ParseInt(query.Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(query.Get("limit"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	listings, total, err := h.Listings.GetListings(r.Context(), filters, page, limit, query.Get("sort_by"), query.Get("sort_order"))
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]listingView, len(listings))
	for i, found := range listings {
		items[i] = toListingView(found)
	}
	writeJSON(w, http.StatusOK, pagedView[listingView]{Items: items, Total: total, Page: page, Limit: limit})
}

func (h *ListingHandler) Publish(w http.ResponseWriter, r *http.Request) {
	published, err := h.Listings.PublishListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingView(published))
}

func (h *ListingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	cancelled, err := h.Listings.CancelListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingView(cancelled))
}

// SoftDelete cascades over the listing's declared dependents.
func (h *ListingHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")
	if _, err := h.Listings.GetListingByID(r.Context(), listingID); err != nil {
		respondError(w, err)
		return
	}
	if err := h.Cascade.SoftDelete(r.Context(), domain.Ref{Kind: domain.KindListing, ID: listingID}); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Restore is the administrative recovery path, so the lookup includes
// soft-deleted rows.
func (h *ListingHandler) Restore(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")
	if _, err := h.Listings.GetListingByIDAny(r.Context(), listingID); err != nil {
		respondError(w, err)
		return
	}
	if err := h.Cascade.Restore(r.Context(), domain.Ref{Kind: domain.KindListing, ID: listingID}); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

// Purge permanently removes the listing row. Admin-only; bypasses cascade.
func (h *ListingHandler) Purge(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")
	if err := h.Cascade.HardDelete(r.Context(), domain.Ref{Kind: domain.KindListing, ID: listingID}); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "purged"})
}

type attachFilesRequest struct {
	UploaderID string `json:"uploader_id"`
	Files      []struct {
		FileName  string `json:"file_name"`
		FileURL   string `json:"file_url"`
		SizeBytes int64  `json:"size_bytes"`
	} `json:"files"`
}

func (h *ListingHandler) AttachFiles(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")
	if _, err := h.Listings.GetListingByID(r.Context(), listingID); err != nil {
		respondError(w, err)
		return
	}

	var req attachFilesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	files := make([]attachment.FileInput, len(req.Files))
	for i, file := range req.Files {
		files[i] = attachment.FileInput{
			FileName:  file.FileName,
			FileURL:   file.FileURL,
			SizeBytes: file.SizeBytes,
		}
	}

	attached, err := h.Attachments.AttachFiles(r.Context(), domain.Ref{Kind: domain.KindListing, ID: listingID}, files, req.UploaderID)
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]attachmentView, len(attached))
	for i, item := range attached {
		items[i] = toAttachmentView(item)
	}
	writeJSON(w, http.StatusCreated, items)
}

func (h *ListingHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	attachments, err := h.Attachments.GetAttachmentsByOwner(r.Context(), domain.Ref{Kind: domain.KindListing, ID: chi.URLParam(r, "id")})
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]attachmentView, len(attachments))
	for i, item := range attachments {
		items[i] = toAttachmentView(item)
	}
	writeJSON(w, http.StatusOK, items)
}
