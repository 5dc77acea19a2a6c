package handlers

import (
	"fmt"
	"log"
	"net/http"

	"merchant-payment-api/models"
	"merchant-payment-api/services/payment"
	"merchant-payment-api/utils"
)

type ClientTokenHandler struct {
	service *payment.Service
}

func NewClientTokenHandler(service *payment.Service) (*ClientTokenHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("payment service is required")
	}
	return &ClientTokenHandler{service: service}, nil
}

// ClientToken hands the tokenization widget its gateway credential.
func (h *ClientTokenHandler) ClientToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.service.ClientToken(r.Context())
	if err != nil {
		log.Printf("Client token generation failed: %v", err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Unable to generate client token")
		return
	}

	utils.SendJSON(w, http.StatusOK, models.ClientTokenResponse{ClientToken: token})
}
