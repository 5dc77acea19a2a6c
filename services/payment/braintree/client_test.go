package braintree

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("merchant_1", "public_key", "private_key", "sandbox", srv.URL), srv
}

func TestSubmitSaleSuccess(t *testing.T) {
	var gotPath string
	var gotAuthUser string
	var gotBody struct {
		Transaction *TransactionRequest `json:"transaction"`
	}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthUser, _, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(TransactionResult{
			Success: true,
			Transaction: &Transaction{
				ID:     "txn123",
				Status: "submitted_for_settlement",
				Amount: "25.00",
				CreditCard: &CreditCardDetails{
					Token:        "tok_1",
					MaskedNumber: "411111******1111",
					CardType:     "Visa",
				},
			},
		})
	})

	req := &TransactionRequest{
		Amount:             "25.00",
		PaymentMethodNonce: "fake-valid-nonce",
		Options:            TransactionOptions{SubmitForSettlement: true},
	}

	result, err := client.SubmitSale(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/merchants/merchant_1/transactions", gotPath)
	assert.Equal(t, "public_key", gotAuthUser)
	require.NotNil(t, gotBody.Transaction)
	assert.Equal(t, "fake-valid-nonce", gotBody.Transaction.PaymentMethodNonce)

	assert.True(t, result.Success)
	require.NotNil(t, result.Transaction)
	assert.Equal(t, "txn123", result.Transaction.ID)
	require.NotNil(t, result.Transaction.CreditCard)
	assert.Equal(t, "tok_1", result.Transaction.CreditCard.Token)
}

func TestSubmitSaleDecline(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(TransactionResult{Success: false, Message: "Processor Declined"})
	})

	result, err := client.SubmitSale(context.Background(), &TransactionRequest{
		Amount:             "10.00",
		PaymentMethodNonce: "fake-processor-declined-visa-nonce",
	})
	require.NoError(t, err, "a decline is a normal outcome, not a transport failure")
	assert.False(t, result.Success)
	assert.Equal(t, "Processor Declined", result.Message)
}

func TestSubmitSaleTransportFailures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "auth rejected",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>not json</html>"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, tc.handler)
			_, err := client.SubmitSale(context.Background(), &TransactionRequest{Amount: "10.00"})
			assert.ErrorIs(t, err, ErrGatewayUnavailable)
		})
	}
}

func TestSubmitSaleConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient("merchant_1", "public_key", "private_key", "sandbox", srv.URL)
	_, err := client.SubmitSale(context.Background(), &TransactionRequest{Amount: "10.00"})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestGenerateClientToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/merchants/merchant_1/client_token", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"clientToken": "ct_abc"})
	})

	token, err := client.GenerateClientToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ct_abc", token)
}

func TestGenerateClientTokenEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})

	_, err := client.GenerateClientToken(context.Background())
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestSearchTransactions(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/merchants/merchant_1/transactions/search", r.URL.Path)
		w.Write([]byte(`{"transactions":[{"id":"txn1","status":"settled","amount":"10.00","instrumentType":"credit_card"}]}`))
	})

	records, err := client.SearchTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "txn1", records[0].ID)
	assert.Equal(t, "credit_card", records[0].InstrumentType)
}

func TestEndpointSelection(t *testing.T) {
	assert.Equal(t, SandboxEndpoint, NewClient("m", "pub", "priv", "sandbox", "").baseURL)
	assert.Equal(t, ProductionEndpoint, NewClient("m", "pub", "priv", "production", "").baseURL)
}
