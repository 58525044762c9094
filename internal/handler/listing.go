package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/palengke-dev/palengke/internal/api"
	"github.com/palengke-dev/palengke/internal/domain"
	"github.com/palengke-dev/palengke/internal/utils"
)

func (h *Handler) GetListings(w http.ResponseWriter, r *http.Request) {
	filter := domain.ListingFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	listings, err := h.listing.List(r.Context(), filter)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	listing, err := h.listing.Get(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var body api.CreateListingRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	listing, err := h.listing.Create(r.Context(), domain.ListingCreationData{
		Title:       body.Title,
		Price:       *body.Price,
		ImageUrl:    body.ImageUrl,
		Category:    body.Category,
		Location:    body.Location,
		SellerEmail: body.SellerEmail,
		Description: body.Description,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, listing)
}
