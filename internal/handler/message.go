package handler

import (
	"net/http"

	"github.com/palengke-dev/palengke/internal/api"
	"github.com/palengke-dev/palengke/internal/domain"
	"github.com/palengke-dev/palengke/internal/utils"
)

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var body api.CreateMessageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	message, err := h.message.Send(r.Context(), domain.MessageCreationData{
		ListingId:   body.ListingId,
		BuyerEmail:  body.BuyerEmail,
		SellerEmail: body.SellerEmail,
		Text:        body.Message,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, message)
}
