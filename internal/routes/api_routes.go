package routes

import (
	"aero-club/tower/internal/api"
	"aero-club/tower/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers) {

	r.Route("/api/v1", func(v1 chi.Router) {

		// Webhook: the messaging provider cannot carry club credentials,
		// so this route sits outside the auth group behind an IP limiter.
		v1.Group(func(webhook chi.Router) {
			webhook.Use(middleware.RateLimitMiddleware)
			webhook.Post("/inbound-text", handlers.InboundText())
		})

		// CRUD surface consumed by the calendar UI
		v1.Group(func(crud chi.Router) {
			crud.Use(middleware.AuthMiddleware(middleware.AuthSecret()))

			crud.Get("/reservations", handlers.ListReservations())
			crud.Post("/reservations", handlers.CreateReservation())
			crud.Get("/reservations/{id}", handlers.GetReservation())
			crud.Put("/reservations/{id}", handlers.UpdateReservation())
			crud.Delete("/reservations/{id}", handlers.DeleteReservation())

			crud.Get("/resources", handlers.ListResources())
		})
	})
}
