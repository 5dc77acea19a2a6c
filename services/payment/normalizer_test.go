package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchant-payment-api/models"
	"merchant-payment-api/services/payment/braintree"
)

func successResult(tx *braintree.Transaction) *braintree.TransactionResult {
	return &braintree.TransactionResult{Success: true, Transaction: tx}
}

func TestNormalizeCreditCard(t *testing.T) {
	result := successResult(&braintree.Transaction{
		ID: "txn1",
		CreditCard: &braintree.CreditCardDetails{
			Token:        "tok_1",
			MaskedNumber: "411111******1111",
			CardType:     "Visa",
			CustomerID:   "cust_1",
		},
	})

	method := NormalizeVaultedPaymentMethod(result)
	require.NotNil(t, method)
	assert.Equal(t, models.PaymentMethodCard, method.Type)
	assert.Equal(t, "tok_1", method.Token)
	assert.Equal(t, "411111******1111", method.MaskedNumber)
	assert.Equal(t, "Visa", method.CardType)
	assert.Equal(t, "cust_1", method.CustomerID)
}

func TestNormalizePriorityOrder(t *testing.T) {
	// Credit card wins even when a PayPal sub-object is also populated.
	result := successResult(&braintree.Transaction{
		CreditCard: &braintree.CreditCardDetails{Token: "tok_cc"},
		PayPal:     &braintree.PayPalDetails{Token: "tok_pp", PayerEmail: "jane@example.com"},
	})

	method := NormalizeVaultedPaymentMethod(result)
	require.NotNil(t, method)
	assert.Equal(t, models.PaymentMethodCard, method.Type)
	assert.Equal(t, "tok_cc", method.Token)
}

func TestNormalizePayPal(t *testing.T) {
	testCases := []struct {
		name          string
		paypal        braintree.PayPalDetails
		expectedToken string
	}{
		{
			name:          "primary token",
			paypal:        braintree.PayPalDetails{Token: "tok_pp", PayerEmail: "jane@example.com"},
			expectedToken: "tok_pp",
		},
		{
			name: "implicit vault token preferred",
			paypal: braintree.PayPalDetails{
				Token:                               "tok_pp",
				ImplicitlyVaultedPaymentMethodToken: "tok_implicit",
				PayerEmail:                          "jane@example.com",
			},
			expectedToken: "tok_implicit",
		},
		{
			name: "implicit vault token alone",
			paypal: braintree.PayPalDetails{
				ImplicitlyVaultedPaymentMethodToken: "tok_implicit",
				PayerEmail:                          "jane@example.com",
			},
			expectedToken: "tok_implicit",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paypal := tc.paypal
			method := NormalizeVaultedPaymentMethod(successResult(&braintree.Transaction{PayPal: &paypal}))
			require.NotNil(t, method)
			assert.Equal(t, models.PaymentMethodPayPal, method.Type)
			assert.Equal(t, tc.expectedToken, method.Token)
			assert.Equal(t, "jane@example.com", method.Email)
		})
	}
}

func TestNormalizeVenmoAndGooglePay(t *testing.T) {
	venmo := NormalizeVaultedPaymentMethod(successResult(&braintree.Transaction{
		VenmoAccount: &braintree.VenmoAccountDetails{Token: "tok_v", Username: "janedoe"},
	}))
	require.NotNil(t, venmo)
	assert.Equal(t, models.PaymentMethodVenmo, venmo.Type)
	assert.Equal(t, "janedoe", venmo.Username)

	gpay := NormalizeVaultedPaymentMethod(successResult(&braintree.Transaction{
		AndroidPayCard: &braintree.AndroidPayCardDetails{Token: "tok_g", MaskedNumber: "555555******4444", CardType: "MasterCard"},
	}))
	require.NotNil(t, gpay)
	assert.Equal(t, models.PaymentMethodGooglePay, gpay.Type)
	assert.Equal(t, "555555******4444", gpay.MaskedNumber)
}

func TestNormalizeYieldsNone(t *testing.T) {
	testCases := []struct {
		name   string
		result *braintree.TransactionResult
	}{
		{name: "nil result", result: nil},
		{
			name: "failed outcome ignores instrument data",
			result: &braintree.TransactionResult{
				Success: false,
				Transaction: &braintree.Transaction{
					CreditCard: &braintree.CreditCardDetails{Token: "tok_1"},
				},
			},
		},
		{name: "success without transaction", result: &braintree.TransactionResult{Success: true}},
		{name: "no instrument data", result: successResult(&braintree.Transaction{ID: "txn1"})},
		{
			name: "instrument without vault token",
			result: successResult(&braintree.Transaction{
				CreditCard: &braintree.CreditCardDetails{MaskedNumber: "411111******1111", CardType: "Visa"},
			}),
		},
		{
			name: "paypal without any token",
			result: successResult(&braintree.Transaction{
				PayPal: &braintree.PayPalDetails{PayerEmail: "jane@example.com"},
			}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, NormalizeVaultedPaymentMethod(tc.result))
		})
	}
}

func TestNormalizeSkipsTokenlessHigherPriority(t *testing.T) {
	// A tokenless credit card sub-object does not shadow a vaulted Venmo
	// account further down the priority list.
	method := NormalizeVaultedPaymentMethod(successResult(&braintree.Transaction{
		CreditCard:   &braintree.CreditCardDetails{MaskedNumber: "411111******1111"},
		VenmoAccount: &braintree.VenmoAccountDetails{Token: "tok_v", Username: "janedoe"},
	}))
	require.NotNil(t, method)
	assert.Equal(t, models.PaymentMethodVenmo, method.Type)
}
