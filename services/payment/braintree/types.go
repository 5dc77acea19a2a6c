package braintree

import (
	"merchant-payment-api/models"
)

// TransactionRequest is the gateway-bound sale payload. Built fresh
// for every request; nonces are single-use so a request is never resent.
type TransactionRequest struct {
	Amount             string                 `json:"amount"`
	PaymentMethodNonce string                 `json:"paymentMethodNonce"`
	RefID              string                 `json:"refId,omitempty"`
	Options            TransactionOptions     `json:"options"`
	Billing            *models.Address        `json:"billing,omitempty"`
	Customer           *CustomerRequest       `json:"customer,omitempty"`
}

type TransactionOptions struct {
	SubmitForSettlement   bool `json:"submitForSettlement"`
	StoreInVaultOnSuccess bool `json:"storeInVaultOnSuccess,omitempty"`
}

// CustomerRequest names the customer the gateway attaches a vault record
// to. Present if and only if StoreInVaultOnSuccess is set.
type CustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CreditCardDetails struct {
	Token        string `json:"token"`
	MaskedNumber string `json:"maskedNumber"`
	CardType     string `json:"cardType"`
	CustomerID   string `json:"customerId"`
}

type PayPalDetails struct {
	Token                               string `json:"token"`
	ImplicitlyVaultedPaymentMethodToken string `json:"implicitlyVaultedPaymentMethodToken"`
	PayerEmail                          string `json:"payerEmail"`
	CustomerID                          string `json:"customerId"`
}

type VenmoAccountDetails struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	CustomerID string `json:"customerId"`
}

type AndroidPayCardDetails struct {
	Token        string `json:"token"`
	MaskedNumber string `json:"maskedNumber"`
	CardType     string `json:"cardType"`
	CustomerID   string `json:"customerId"`
}

// Transaction is the gateway's view of a settled (or declined) sale. At
// most one instrument sub-object is expected to be populated.
type Transaction struct {
	ID             string                 `json:"id"`
	Status         string                 `json:"status"`
	Amount         string                 `json:"amount"`
	CreditCard     *CreditCardDetails     `json:"creditCard,omitempty"`
	PayPal         *PayPalDetails         `json:"paypal,omitempty"`
	VenmoAccount   *VenmoAccountDetails   `json:"venmoAccount,omitempty"`
	AndroidPayCard *AndroidPayCardDetails `json:"androidPayCard,omitempty"`
}

// TransactionResult is the gateway response to a sale. Success=false is a
// business decline, not a transport failure.
type TransactionResult struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Transaction *Transaction `json:"transaction,omitempty"`
}

type clientTokenResponse struct {
	ClientToken string `json:"clientToken"`
}

type transactionSearchResponse struct {
	Transactions []models.TransactionRecord `json:"transactions"`
}
