package models

import "time"

type TransactionSummary struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount string `json:"amount"`
}

// SaleResponse is the caller-facing outcome of a sale. A declined
// transaction comes back with Success=false and the gateway's decline
// message in Error.
type SaleResponse struct {
	Success              bool                  `json:"success"`
	Transaction          *TransactionSummary   `json:"transaction,omitempty"`
	VaultedPaymentMethod *VaultedPaymentMethod `json:"vaultedPaymentMethod,omitempty"`
	Error                string                `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ClientTokenResponse struct {
	ClientToken string `json:"clientToken"`
}

// TransactionRecord is a historical transaction as reported by the gateway,
// already normalized for the reporting pipeline.
type TransactionRecord struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Amount         string    `json:"amount"`
	InstrumentType string    `json:"instrumentType"`
	CreatedAt      time.Time `json:"createdAt"`
}
