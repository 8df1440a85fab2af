package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public and authenticated route groups
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})
		r.Post("/contact", handlers.contactHandler.submitMessage())
		r.Get("/auth/callback", handlers.authHandler.callback())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Design lifecycle endpoints
		r.Post("/design", handlers.designHandler.submitDesign())
		r.Get("/designs", handlers.designHandler.getMyDesigns())
		r.Get("/design/{designID}", handlers.designHandler.getDesign())
		r.Put("/design/{designID}", handlers.designHandler.updateDesign())
		r.Delete("/design/{designID}", handlers.designHandler.deleteDesign())
		r.Post("/design/{designID}/status", handlers.designHandler.transitionStatus())

		// Development endpoints
		r.Get("/development/designs", handlers.developmentHandler.getDevelopmentDesigns())
		r.Get("/development/stats", handlers.developmentHandler.getStats())
		r.Post("/development/{designID}/join", handlers.developmentHandler.joinTeam())

		// Profile endpoints
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Put("/profile", handlers.profileHandler.updateProfile())
		r.Get("/profile/stats", handlers.profileHandler.getStats())
		r.Get("/skills", handlers.profileHandler.getSkills())
		r.Get("/achievements", handlers.profileHandler.getAchievements())
	})
}
