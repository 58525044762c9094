package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palengke-dev/palengke/internal/domain"
	internal_errors "github.com/palengke-dev/palengke/internal/errors"
)

func TestGetListingsHandler(t *testing.T) {
	t.Run("successful request passes filters through", func(t *testing.T) {
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		mockService := &MockListingService{
			MockList: func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
				assert.Equal(t, "furniture", filter.Category)
				assert.Equal(t, "chair", filter.Search)
				return []domain.Listing{{Id: "id-1", Title: "Chair", Price: 500, Category: "furniture", CreatedAt: created}}, nil
			},
		}
		router := setupTestRouter(&Handler{listing: mockService})

		req := httptest.NewRequest(http.MethodGet, "/listings?category=furniture&search=chair", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var listings []domain.Listing
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listings))
		require.Len(t, listings, 1)
		assert.Equal(t, "Chair", listings[0].Title)
	})

	t.Run("no filters map to empty filter", func(t *testing.T) {
		mockService := &MockListingService{
			MockList: func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
				assert.Equal(t, domain.ListingFilter{}, filter)
				return []domain.Listing{}, nil
			},
		}
		router := setupTestRouter(&Handler{listing: mockService})

		req := httptest.NewRequest(http.MethodGet, "/listings", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String(), "empty result should be an empty json array")
	})

	t.Run("store failure surfaces as 500", func(t *testing.T) {
		mockService := &MockListingService{
			MockList: func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
				return nil, assert.AnError
			},
		}
		router := setupTestRouter(&Handler{listing: mockService})

		req := httptest.NewRequest(http.MethodGet, "/listings", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "error")
	})
}

func TestGetListingHandler(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		id := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
		mockService := &MockListingService{
			MockGet: func(ctx context.Context, gotId string) (domain.Listing, error) {
				assert.Equal(t, id, gotId)
				return domain.Listing{Id: gotId, Title: "Chair"}, nil
			},
		}
		router := setupTestRouter(&Handler{listing: mockService})

		req := httptest.NewRequest(http.MethodGet, "/listings/"+id, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var listing domain.Listing
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listing))
		assert.Equal(t, "Chair", listing.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := &MockListingService{
			MockGet: func(ctx context.Context, id string) (domain.Listing, error) {
				return domain.Listing{}, internal_errors.NotFound("Item not found")
			},
		}
		router := setupTestRouter(&Handler{listing: mockService})

		req := httptest.NewRequest(http.MethodGet, "/listings/f47ac10b-58cc-4372-a567-0e02b2c3d479", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Item not found"}`, rr.Body.String())
	})
}

func TestCreateListingHandler(t *testing.T) {
	validBody := []byte(`{"title":"Chair","price":500,"image_url":"https://x/img.png","category":"furniture","location":"Manila","seller_email":"a@b.com"}`)

	t.Run("successful request returns materialized record", func(t *testing.T) {
		mockService := &MockListingService{
			MockCreate: func(ctx context.Context, data domain.ListingCreationData) (domain.Listing, error) {
				assert.Equal(t, "Chair", data.Title)
				assert.Equal(t, 500.0, data.Price)
				assert.Equal(t, "https://x/img.png", data.ImageUrl)
				assert.Nil(t, data.Description)
				return domain.Listing{
					Id:          "f47ac10b-58cc-4372-a567-0e02b2c3d479",
					Title:       data.Title,
					Price:       data.Price,
					ImageUrl:    data.ImageUrl,
					Category:    data.Category,
					Location:    data.Location,
					SellerEmail: data.SellerEmail,
					CreatedAt:   time.Now(),
				}, nil
			},
		}
		router := setupTestRouter(&Handler{listing: mockService})

		req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBuffer(validBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var listing domain.Listing
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listing))
		assert.NotEmpty(t, listing.Id)
		assert.False(t, listing.CreatedAt.IsZero())
		assert.Equal(t, "Chair", listing.Title)
		assert.Equal(t, 500.0, listing.Price)
	})

	t.Run("invalid json", func(t *testing.T) {
		serviceCalled := false
		mockService := &MockListingService{
			MockCreate: func(ctx context.Context, data domain.ListingCreationData) (domain.Listing, error) {
				serviceCalled = true
				return domain.Listing{}, nil
			},
		}
		router := setupTestRouter(&Handler{listing: mockService})

		req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBuffer([]byte(`{invalid json::}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Body is invalid json")
		assert.False(t, serviceCalled, "nothing may reach the store on a client error")
	})

	t.Run("missing price", func(t *testing.T) {
		router := setupTestRouter(&Handler{listing: &MockListingService{}})
		body := []byte(`{"title":"Chair","image_url":"https://x/img.png","category":"furniture","location":"Manila","seller_email":"a@b.com"}`)

		req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "price (required)")
	})

	t.Run("image_url not a url", func(t *testing.T) {
		router := setupTestRouter(&Handler{listing: &MockListingService{}})
		body := []byte(`{"title":"Chair","price":500,"image_url":"not a url","category":"furniture","location":"Manila","seller_email":"a@b.com"}`)

		req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "image_url (url)")
	})

	t.Run("seller_email not an email", func(t *testing.T) {
		router := setupTestRouter(&Handler{listing: &MockListingService{}})
		body := []byte(`{"title":"Chair","price":500,"image_url":"https://x/img.png","category":"furniture","location":"Manila","seller_email":"nope"}`)

		req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "seller_email (email)")
	})

	t.Run("store failure surfaces as 500", func(t *testing.T) {
		mockService := &MockListingService{
			MockCreate: func(ctx context.Context, data domain.ListingCreationData) (domain.Listing, error) {
				return domain.Listing{}, assert.AnError
			},
		}
		router := setupTestRouter(&Handler{listing: mockService})

		req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBuffer(validBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
