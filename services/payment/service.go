package payment

import (
	"context"
	"fmt"
	"log"

	"merchant-payment-api/metrics"
	"merchant-payment-api/models"
)

type Service struct {
	gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// Sale runs the full pipeline: validate, build, submit, normalize, compose.
// A business decline comes back as a Success=false response with a nil
// error; the returned error is either a *ValidationError or a wrapped
// transport failure.
func (s *Service) Sale(ctx context.Context, req *models.PaymentRequest, idempotencyKey string) (*models.SaleResponse, error) {
	if err := ValidateSaleRequest(req); err != nil {
		metrics.SalesTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	txRequest, err := BuildTransactionRequest(req, idempotencyKey)
	if err != nil {
		// The validator already bounds the amount, so this only fires on
		// input shapes ParseFloat accepts but FormatAmount does not.
		metrics.SalesTotal.WithLabelValues("rejected").Inc()
		return nil, &ValidationError{Code: InvalidAmount, Message: "Valid amount is required"}
	}

	result, err := s.gateway.SubmitSale(ctx, txRequest)
	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues("sale", "error").Inc()
		metrics.SalesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("submitting sale: %w", err)
	}
	metrics.GatewayRequestsTotal.WithLabelValues("sale", "ok").Inc()

	if result.Success {
		metrics.SalesTotal.WithLabelValues("success").Inc()
		if result.Transaction != nil {
			log.Printf("Sale settled: transaction %s (%s)", result.Transaction.ID, result.Transaction.Status)
		}
	} else {
		metrics.SalesTotal.WithLabelValues("declined").Inc()
		log.Printf("Sale declined: %s", result.Message)
	}

	return ComposeSaleResponse(result), nil
}

// ClientToken fetches a tokenization credential for the client widget.
func (s *Service) ClientToken(ctx context.Context) (string, error) {
	token, err := s.gateway.GenerateClientToken(ctx)
	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues("client_token", "error").Inc()
		return "", fmt.Errorf("generating client token: %w", err)
	}
	metrics.GatewayRequestsTotal.WithLabelValues("client_token", "ok").Inc()
	return token, nil
}

// Transactions lists the gateway's historical records for reporting.
func (s *Service) Transactions(ctx context.Context) ([]models.TransactionRecord, error) {
	records, err := s.gateway.SearchTransactions(ctx)
	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues("search", "error").Inc()
		return nil, fmt.Errorf("searching transactions: %w", err)
	}
	metrics.GatewayRequestsTotal.WithLabelValues("search", "ok").Inc()
	return records, nil
}
