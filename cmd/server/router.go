package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/getconnects/leadrelay/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Route("/webhooks/dialer", func(r chi.Router) {
		r.Post("/", h.CreateEndpoint)
		r.Route("/{token}", func(r chi.Router) {
			r.Post("/", h.IngestWebhook)
			r.Delete("/", h.DeleteEndpoint)
			r.Get("/latest", h.GetLatestPayload)
			r.Get("/mapping", h.GetMapping)
			r.Post("/mapping", h.SaveMapping)
		})
	})

	r.Post("/leads", h.CreateLead)
	r.Put("/leads/{id}", h.UpdateLead)

	r.Put("/campaigns/{id}/client", h.ReassignCampaignClient)

	r.Get("/notifications", h.GetNotificationLogs)

	r.Get("/health", h.HealthCheck)

	return r
}
