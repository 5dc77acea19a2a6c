package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"merchant-payment-api/idempotency"
	"merchant-payment-api/metrics"
	"merchant-payment-api/models"
	"merchant-payment-api/services/payment"
	"merchant-payment-api/utils"
)

// gatewayUnavailableMessage is deliberately generic: infrastructure
// failures must not leak gateway internals to the caller.
const gatewayUnavailableMessage = "Payment gateway is temporarily unavailable. Please try again later."

// IdempotencyStore replays a previously served sale response for a repeated
// Idempotency-Key. May be backed by redis in production and a map in tests.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (*idempotency.Record, error)
	Remember(ctx context.Context, key string, rec *idempotency.Record) error
}

type SaleHandler struct {
	service *payment.Service
	store   IdempotencyStore
}

// NewSaleHandler wires the sale endpoint. The store is optional; without it
// the Idempotency-Key header is passed to the gateway but never replayed.
func NewSaleHandler(service *payment.Service, store IdempotencyStore) (*SaleHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("payment service is required")
	}
	return &SaleHandler{service: service, store: store}, nil
}

func (h *SaleHandler) Sale(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	log.Printf("[RequestID: %s] Starting sale", requestID)

	var req models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[RequestID: %s] Invalid request body: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")
	if idempotencyKey != "" && h.store != nil {
		rec, err := h.store.Lookup(r.Context(), idempotencyKey)
		if err != nil {
			// Fail open: a cache outage must not block payments.
			log.Printf("[RequestID: %s] Warning: idempotency lookup failed: %v", requestID, err)
		} else if rec != nil {
			log.Printf("[RequestID: %s] Replaying recorded response for idempotency key %s", requestID, idempotencyKey)
			metrics.IdempotentReplaysTotal.Inc()
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Idempotent-Replay", "true")
			w.WriteHeader(rec.Status)
			w.Write(rec.Body)
			return
		}
	}

	resp, err := h.service.Sale(r.Context(), &req, idempotencyKey)
	if err != nil {
		var verr *payment.ValidationError
		if errors.As(err, &verr) {
			log.Printf("[RequestID: %s] Validation failed (%s): %s", requestID, verr.Code, verr.Message)
			utils.SendErrorResponse(w, http.StatusBadRequest, verr.Message)
			return
		}

		// Full detail stays server-side.
		log.Printf("[RequestID: %s] Gateway failure: %v", requestID, err)
		utils.SendJSON(w, http.StatusInternalServerError, models.SaleResponse{
			Success: false,
			Error:   gatewayUnavailableMessage,
		})
		return
	}

	status := http.StatusOK
	if !resp.Success {
		status = http.StatusBadRequest
	}

	body, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[RequestID: %s] Failed to encode response: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Only completed outcomes are recorded; a transport failure leaves the
	// key unclaimed so the client may retry.
	if idempotencyKey != "" && h.store != nil {
		rec := &idempotency.Record{Status: status, Body: body}
		if err := h.store.Remember(r.Context(), idempotencyKey, rec); err != nil {
			log.Printf("[RequestID: %s] Warning: failed to record idempotency key: %v", requestID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
