package payment

import (
	"strconv"
	"strings"

	"merchant-payment-api/models"
)

type ValidationCode string

const (
	MissingNonce  ValidationCode = "missing_nonce"
	InvalidAmount ValidationCode = "invalid_amount"
)

// ValidationError rejects a request before any gateway call is made. The
// message is merchant-safe and returned to the caller verbatim.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateSaleRequest checks the structural minimum for a sale: a nonce and
// a positive numeric amount. No other field is required.
func ValidateSaleRequest(req *models.PaymentRequest) error {
	if strings.TrimSpace(req.PaymentMethodNonce) == "" {
		return &ValidationError{Code: MissingNonce, Message: "Payment method nonce is required"}
	}

	raw := strings.TrimSpace(req.Amount.String())
	if raw == "" {
		return &ValidationError{Code: InvalidAmount, Message: "Valid amount is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return &ValidationError{Code: InvalidAmount, Message: "Valid amount is required"}
	}

	return nil
}
