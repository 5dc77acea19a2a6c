package payment

import (
	"merchant-payment-api/models"
	"merchant-payment-api/services/payment/braintree"
)

// ComposeSaleResponse assembles the caller-facing payload from a gateway
// outcome. Decline messages pass through largely verbatim because they are
// merchant-safe; transport failures never reach this function.
func ComposeSaleResponse(result *braintree.TransactionResult) *models.SaleResponse {
	if result == nil || !result.Success {
		message := "Transaction failed"
		if result != nil && result.Message != "" {
			message = result.Message
		}
		return &models.SaleResponse{Success: false, Error: message}
	}

	resp := &models.SaleResponse{Success: true}
	if tx := result.Transaction; tx != nil {
		resp.Transaction = &models.TransactionSummary{
			ID:     tx.ID,
			Status: tx.Status,
			Amount: tx.Amount,
		}
	}
	resp.VaultedPaymentMethod = NormalizeVaultedPaymentMethod(result)
	return resp
}
