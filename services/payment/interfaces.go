package payment

import (
	"context"

	"merchant-payment-api/models"
	"merchant-payment-api/services/payment/braintree"
)

// Gateway is the external collaborator owning network, auth and settlement
// concerns. Injected so tests can run against a double without network
// access.
type Gateway interface {
	GenerateClientToken(ctx context.Context) (string, error)
	SubmitSale(ctx context.Context, req *braintree.TransactionRequest) (*braintree.TransactionResult, error)
	SearchTransactions(ctx context.Context) ([]models.TransactionRecord, error)
}
