package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every lifecycle endpoint. Proposal decisions (accept,
// reject) live under /proposals even though they are served by the
// assignment engine.
func NewRouter(
	listings *ListingHandler,
	proposals *ProposalHandler,
	assignments *AssignmentHandler,
	disputes *DisputeHandler) http.Handler {

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/listings", func(r chi.Router) {
		r.Post("/", listings.Create)
		r.Get("/", listings.List)
		r.Get("/{id}", listings.Get)
		r.Post("/{id}/publish", listings.Publish)
		r.Post("/{id}/cancel", listings.Cancel)
		r.Delete("/{id}", listings.SoftDelete)
		r.Post("/{id}/restore", listings.Restore)
		r.Delete("/{id}/purge", listings.Purge)
		r.Post("/{id}/attachments", listings.AttachFiles)
		r.Get("/{id}/attachments", listings.ListAttachments)

		r.Post("/{id}/proposals", proposals.Submit)
		r.Get("/{id}/proposals", proposals.ListByListing)

		r.Get("/{id}/assignment", assignments.GetByListing)

		r.Post("/{id}/disputes", disputes.Create)
		r.Get("/{id}/disputes", disputes.ListByListing)
	})

	r.Route("/proposals", func(r chi.Router) {
		r.Get("/", proposals.ListByProposer)
		r.Get("/{id}", proposals.Get)
		r.Post("/{id}/withdraw", proposals.Withdraw)
		r.Post("/{id}/accept", proposals.Accept)
		r.Post("/{id}/reject", proposals.Reject)
	})

	r.Route("/assignments", func(r chi.Router) {
		r.Get("/{id}", assignments.Get)
		r.Post("/{id}/start", assignments.Start)
		r.Post("/{id}/complete", assignments.Complete)
		r.Post("/{id}/cancel", assignments.Cancel)
		r.Patch("/{id}/progress", assignments.UpdateProgress)
	})

	r.Route("/disputes", func(r chi.Router) {
		r.Get("/", disputes.List)
		r.Get("/{id}", disputes.Get)
		r.Post("/{id}/review", disputes.Review)
		r.Post("/{id}/resolve", disputes.Resolve)
	})

	return r
}
