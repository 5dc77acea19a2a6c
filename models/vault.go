package models

type PaymentMethodType string

const (
	PaymentMethodCard      PaymentMethodType = "Card"
	PaymentMethodPayPal    PaymentMethodType = "PayPal"
	PaymentMethodVenmo     PaymentMethodType = "Venmo"
	PaymentMethodGooglePay PaymentMethodType = "GooglePay"
)

// VaultedPaymentMethod is the normalized view of whatever instrument the
// gateway vaulted for a transaction. Type tags the variant for in-process
// dispatch; only the fields belonging to that variant are populated. Token
// is the durable handle the merchant stores for future charges.
type VaultedPaymentMethod struct {
	Type         PaymentMethodType `json:"-"`
	Token        string            `json:"token"`
	MaskedNumber string            `json:"maskedNumber,omitempty"`
	CardType     string            `json:"cardType,omitempty"`
	Email        string            `json:"email,omitempty"`
	Username     string            `json:"username,omitempty"`
	CustomerID   string            `json:"customerId,omitempty"`
}
