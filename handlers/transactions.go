package handlers

import (
	"fmt"
	"log"
	"net/http"

	"merchant-payment-api/report"
	"merchant-payment-api/services/payment"
	"merchant-payment-api/utils"
)

type TransactionsHandler struct {
	service *payment.Service
}

func NewTransactionsHandler(service *payment.Service) (*TransactionsHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("payment service is required")
	}
	return &TransactionsHandler{service: service}, nil
}

// List renders the gateway's historical transactions as JSON, CSV or a
// plain-text table. Pure formatting; the gateway owns the records.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Transactions(r.Context())
	if err != nil {
		log.Printf("Transaction search failed: %v", err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Unable to fetch transactions")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "json":
		utils.SendJSON(w, http.StatusOK, records)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
		if err := report.WriteCSV(w, records); err != nil {
			log.Printf("CSV rendering failed: %v", err)
		}
	case "table":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := report.WriteTable(w, records); err != nil {
			log.Printf("Table rendering failed: %v", err)
		}
	default:
		utils.SendErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Unsupported format: %s", format))
	}
}
