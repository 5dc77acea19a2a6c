package braintree

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"merchant-payment-api/models"
)

const (
	SandboxEndpoint    = "https://api.sandbox.braintreegateway.com"
	ProductionEndpoint = "https://api.braintreegateway.com"
	RequestTimeout     = 30 * time.Second
)

// ErrGatewayUnavailable signals a transport or auth failure reaching the
// gateway. A business decline is a normal TransactionResult, never this.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

type Client struct {
	merchantID  string
	publicKey   string
	privateKey  string
	environment string
	baseURL     string
	client      *http.Client
}

// NewClient builds a gateway client for the configured environment. Pass a
// non-empty baseURL override for tests; production code leaves it empty.
func NewClient(merchantID, publicKey, privateKey, environment, baseURL string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		MaxConnsPerHost:     100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	if baseURL == "" {
		if environment == "production" {
			baseURL = ProductionEndpoint
		} else {
			baseURL = SandboxEndpoint
		}
	}

	return &Client{
		merchantID:  merchantID,
		publicKey:   publicKey,
		privateKey:  privateKey,
		environment: environment,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout:   RequestTimeout,
			Transport: transport,
		},
	}
}

// GenerateClientToken fetches a short-lived credential for the client-side
// tokenization widget.
func (c *Client) GenerateClientToken(ctx context.Context) (string, error) {
	body, err := c.post(ctx, fmt.Sprintf("/merchants/%s/client_token", c.merchantID), nil)
	if err != nil {
		return "", err
	}

	var resp clientTokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: error decoding client token response: %v", ErrGatewayUnavailable, err)
	}
	if resp.ClientToken == "" {
		return "", fmt.Errorf("%w: gateway returned an empty client token", ErrGatewayUnavailable)
	}
	return resp.ClientToken, nil
}

// SubmitSale sends a sale for immediate settlement. The error is non-nil
// only for transport-level failures; declines come back in the result.
func (c *Client) SubmitSale(ctx context.Context, req *TransactionRequest) (*TransactionResult, error) {
	startTime := time.Now()

	payload := struct {
		Transaction *TransactionRequest `json:"transaction"`
	}{Transaction: req}

	body, err := c.post(ctx, fmt.Sprintf("/merchants/%s/transactions", c.merchantID), payload)
	if err != nil {
		return nil, err
	}

	var result TransactionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: error decoding sale response: %v", ErrGatewayUnavailable, err)
	}

	log.Printf("Gateway sale response received in %v (success=%t)", time.Since(startTime), result.Success)
	return &result, nil
}

// SearchTransactions lists the gateway's historical transaction records.
// The gateway owns all durable state; this is a read-only passthrough for
// the reporting pipeline.
func (c *Client) SearchTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	body, err := c.post(ctx, fmt.Sprintf("/merchants/%s/transactions/search", c.merchantID), nil)
	if err != nil {
		return nil, err
	}

	var resp transactionSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: error decoding search response: %v", ErrGatewayUnavailable, err)
	}
	return resp.Transactions, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error marshaling request: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonPayload)
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	httpReq.SetBasicAuth(c.publicKey, c.privateKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Cache-Control", "no-cache")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading response body: %v", ErrGatewayUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: authentication rejected (status %d)", ErrGatewayUnavailable, resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: gateway returned status %d", ErrGatewayUnavailable, resp.StatusCode)
	}

	// 422 carries a processable decline body; pass it to the caller.
	return respBody, nil
}
