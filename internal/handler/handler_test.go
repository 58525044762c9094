package handler

import (
	"context"
	"io"

	"github.com/go-chi/chi/v5"

	"github.com/palengke-dev/palengke/internal/config"
	"github.com/palengke-dev/palengke/internal/domain"
)

// Shared test doubles and router setup for handler tests.

// MockListingService implements the service.ListingService interface
type MockListingService struct {
	MockCreate     func(ctx context.Context, data domain.ListingCreationData) (domain.Listing, error)
	MockList       func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	MockGet        func(ctx context.Context, id string) (domain.Listing, error)
	MockCategories func(ctx context.Context) ([]domain.Category, error)
}

func (m *MockListingService) Create(ctx context.Context, data domain.ListingCreationData) (domain.Listing, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.Listing{}, nil
}

func (m *MockListingService) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if m.MockList != nil {
		return m.MockList(ctx, filter)
	}
	return nil, nil
}

func (m *MockListingService) Get(ctx context.Context, id string) (domain.Listing, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, id)
	}
	return domain.Listing{}, nil
}

func (m *MockListingService) Categories(ctx context.Context) ([]domain.Category, error) {
	if m.MockCategories != nil {
		return m.MockCategories(ctx)
	}
	return nil, nil
}

// MockMessageService implements the service.MessageService interface
type MockMessageService struct {
	MockSend func(ctx context.Context, data domain.MessageCreationData) (domain.Message, error)
}

func (m *MockMessageService) Send(ctx context.Context, data domain.MessageCreationData) (domain.Message, error) {
	if m.MockSend != nil {
		return m.MockSend(ctx, data)
	}
	return domain.Message{}, nil
}

// MockUploadService implements the service.UploadService interface
type MockUploadService struct {
	MockUpload func(ctx context.Context, file io.Reader, originalName, contentType string) (string, error)
}

func (m *MockUploadService) Upload(ctx context.Context, file io.Reader, originalName, contentType string) (string, error) {
	if m.MockUpload != nil {
		return m.MockUpload(ctx, file, originalName, contentType)
	}
	return "http://store/bucket/test.png", nil
}

// MockHealthChecker implements the HealthChecker interface
type MockHealthChecker struct {
	MockPing func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{
			Upload: config.Upload{
				MaxFileSizeBytes: 10 << 20,
				AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
			},
		},
	}
}

// setupTestRouter wires a handler into the same routes the real router uses.
func setupTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
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
