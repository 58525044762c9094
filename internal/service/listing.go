package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/palengke-dev/palengke/internal/domain"
	"github.com/palengke-dev/palengke/internal/errors"
)

type ListingService interface {
	Create(ctx context.Context, data domain.ListingCreationData) (domain.Listing, error)
	List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	Get(ctx context.Context, id string) (domain.Listing, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type ListingStorage interface {
	CreateListing(ctx context.Context, data domain.ListingCreationData) (domain.Listing, error)
	GetListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	GetListing(ctx context.Context, id domain.ListingId) (domain.Listing, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
}

type TextSanitizer interface {
	Clean(text string) string
	CleanPtr(text *string) *string
}

type Listing struct {
	storage   ListingStorage
	sanitizer TextSanitizer
}

func NewListing(storage ListingStorage, sanitizer TextSanitizer) ListingService {
	return &Listing{storage, sanitizer}
}

func (l *Listing) Create(ctx context.Context, data domain.ListingCreationData) (domain.Listing, error) {
	data.Title = l.sanitizer.Clean(data.Title)
	data.Category = l.sanitizer.Clean(data.Category)
	data.Location = l.sanitizer.Clean(data.Location)
	data.Description = l.sanitizer.CleanPtr(data.Description)

	return l.storage.CreateListing(ctx, data)
}

func (l *Listing) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	return l.storage.GetListings(ctx, filter)
}

// Get treats a malformed id the same as a missing row: both are "Item not
// found", neither is a server error.
func (l *Listing) Get(ctx context.Context, id string) (domain.Listing, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Listing{}, errors.NotFound("Item not found")
	}
	return l.storage.GetListing(ctx, id)
}

func (l *Listing) Categories(ctx context.Context) ([]domain.Category, error) {
	return l.storage.GetCategories(ctx)
}
