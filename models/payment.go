package models

import (
	"encoding/json"
)

// Amount carries the request amount as its original decimal string. The
// client widget sends it as either a JSON string or a JSON number.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) String() string {
	return string(a)
}

type Address struct {
	FirstName         string `json:"firstName,omitempty"`
	LastName          string `json:"lastName,omitempty"`
	StreetAddress     string `json:"streetAddress,omitempty"`
	ExtendedAddress   string `json:"extendedAddress,omitempty"`
	Locality          string `json:"locality,omitempty"`
	Region            string `json:"region,omitempty"`
	PostalCode        string `json:"postalCode,omitempty"`
	CountryCodeAlpha2 string `json:"countryCodeAlpha2,omitempty"`
}

// PaymentRequest is the inbound sale payload. The nonce is single-use, so a
// given request can never be submitted twice; PaymentMethodType is a client
// hint only and never treated as authoritative.
type PaymentRequest struct {
	PaymentMethodNonce string   `json:"paymentMethodNonce"`
	Amount             Amount   `json:"amount"`
	BillingAddress     *Address `json:"billingAddress,omitempty"`
	VaultPaymentMethod bool     `json:"vaultPaymentMethod,omitempty"`
	CardholderName     string   `json:"cardholderName,omitempty"`
	PaymentMethodType  string   `json:"paymentMethodType,omitempty"`
}
