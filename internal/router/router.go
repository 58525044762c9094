package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/palengke-dev/palengke/internal/middleware/metrics"
	"github.com/palengke-dev/palengke/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	// setup CORS for the UI
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Use(metrics.Middleware)

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/listings", func(r chi.Router) {
		r.Get("/", h.GetListings)
		r.Post("/", h.CreateListing)
		r.Get("/{id}", h.GetListing)
	})

	r.Post("/upload", h.UploadImage)
	r.Post("/messages", h.CreateMessage)
	r.Get("/categories", h.GetCategories)

	return r
}
