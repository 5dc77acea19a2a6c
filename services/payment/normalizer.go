package payment

import (
	"merchant-payment-api/models"
	"merchant-payment-api/services/payment/braintree"
)

// vaultExtractors fixes the instrument priority order: credit card, then
// PayPal, then Venmo account, then Google Pay card. At most one sub-object
// is expected per transaction; if the gateway ever populates several, the
// first extractor returning a method wins and the rest are ignored.
var vaultExtractors = []func(*braintree.Transaction) *models.VaultedPaymentMethod{
	extractCreditCard,
	extractPayPal,
	extractVenmoAccount,
	extractAndroidPayCard,
}

// NormalizeVaultedPaymentMethod collapses the gateway's instrument-specific
// response shapes into the single normalized representation. A nil return
// means the gateway vaulted nothing, which is an absence, not an error;
// vaulting is opportunistic and the gateway may silently decline it.
func NormalizeVaultedPaymentMethod(result *braintree.TransactionResult) *models.VaultedPaymentMethod {
	if result == nil || !result.Success || result.Transaction == nil {
		return nil
	}
	for _, extract := range vaultExtractors {
		if method := extract(result.Transaction); method != nil {
			return method
		}
	}
	return nil
}

func extractCreditCard(tx *braintree.Transaction) *models.VaultedPaymentMethod {
	cc := tx.CreditCard
	if cc == nil || cc.Token == "" {
		return nil
	}
	return &models.VaultedPaymentMethod{
		Type:         models.PaymentMethodCard,
		Token:        cc.Token,
		MaskedNumber: cc.MaskedNumber,
		CardType:     cc.CardType,
		CustomerID:   cc.CustomerID,
	}
}

func extractPayPal(tx *braintree.Transaction) *models.VaultedPaymentMethod {
	pp := tx.PayPal
	if pp == nil {
		return nil
	}
	// A one-time PayPal checkout can be silently linked to an existing
	// vault record; the implicitly vaulted token is the durable handle
	// then, not the primary one.
	token := pp.Token
	if pp.ImplicitlyVaultedPaymentMethodToken != "" {
		token = pp.ImplicitlyVaultedPaymentMethodToken
	}
	if token == "" {
		return nil
	}
	return &models.VaultedPaymentMethod{
		Type:       models.PaymentMethodPayPal,
		Token:      token,
		Email:      pp.PayerEmail,
		CustomerID: pp.CustomerID,
	}
}

func extractVenmoAccount(tx *braintree.Transaction) *models.VaultedPaymentMethod {
	va := tx.VenmoAccount
	if va == nil || va.Token == "" {
		return nil
	}
	return &models.VaultedPaymentMethod{
		Type:       models.PaymentMethodVenmo,
		Token:      va.Token,
		Username:   va.Username,
		CustomerID: va.CustomerID,
	}
}

func extractAndroidPayCard(tx *braintree.Transaction) *models.VaultedPaymentMethod {
	apc := tx.AndroidPayCard
	if apc == nil || apc.Token == "" {
		return nil
	}
	return &models.VaultedPaymentMethod{
		Type:         models.PaymentMethodGooglePay,
		Token:        apc.Token,
		MaskedNumber: apc.MaskedNumber,
		CardType:     apc.CardType,
		CustomerID:   apc.CustomerID,
	}
}
