package handler

import (
	"net/http"

	"github.com/palengke-dev/palengke/internal/api"
	"github.com/palengke-dev/palengke/internal/utils"
)

// GetCategories exposes the distinct category values currently present across
// listings. Callers may degrade to an empty list if this fails.
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listing.Categories(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.CategoriesResponse{Categories: categories})
}
