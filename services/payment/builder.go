package payment

import (
	"fmt"
	"strings"

	"merchant-payment-api/models"
	"merchant-payment-api/services/payment/braintree"
	"merchant-payment-api/utils"
)

// instrumentLabels name the placeholder customer for vaulting requests that
// carry no billing address. Redirect-style instruments never collect a
// cardholder name, but the gateway still needs one to create a vault
// record.
var instrumentLabels = map[string]string{
	string(models.PaymentMethodCard):      "Card",
	string(models.PaymentMethodPayPal):    "PayPal",
	string(models.PaymentMethodVenmo):     "Venmo",
	string(models.PaymentMethodGooglePay): "Google Pay",
}

// BuildTransactionRequest maps a validated payment request onto the gateway
// transaction shape. Every sale is submitted for immediate settlement;
// authorization-only transactions are never created here. Pure transform,
// no I/O.
func BuildTransactionRequest(req *models.PaymentRequest, idempotencyKey string) (*braintree.TransactionRequest, error) {
	amount, err := utils.FormatAmount(req.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("building transaction request: %v", err)
	}

	tx := &braintree.TransactionRequest{
		Amount:             amount,
		PaymentMethodNonce: req.PaymentMethodNonce,
		RefID:              idempotencyKey,
		Options: braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	}

	if req.BillingAddress != nil {
		billing := *req.BillingAddress
		tx.Billing = &billing
	}

	if req.VaultPaymentMethod {
		tx.Options.StoreInVaultOnSuccess = true
		tx.Customer = buildCustomer(req)
	}

	return tx, nil
}

func buildCustomer(req *models.PaymentRequest) *braintree.CustomerRequest {
	if addr := req.BillingAddress; addr != nil {
		first := strings.TrimSpace(addr.FirstName)
		if first == "" {
			first = "Customer"
		}
		return &braintree.CustomerRequest{
			FirstName: first,
			LastName:  strings.TrimSpace(addr.LastName),
		}
	}

	if label, ok := instrumentLabels[req.PaymentMethodType]; ok {
		return &braintree.CustomerRequest{FirstName: label, LastName: "Customer"}
	}
	return &braintree.CustomerRequest{FirstName: "Customer"}
}
