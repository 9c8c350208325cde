package entity

// MerchantConfig holds the merchant identity registered with CPay.
// It is built once per integration and must not be changed afterwards.
type MerchantConfig struct {
	// Shared secret folded into the checksum, never sent as a form field
	AuthKey string
	// Merchant identifier assigned by CPay, sent as PayToMerchant
	PayToMerchant string
	// Display name of the merchant, sent as MerchantName
	MerchantName string
	// Redirect target after a successful payment
	PaymentOkUrl string
	// Redirect target after a failed or cancelled payment
	PaymentFailUrl string
	// IsProduction selects the production endpoint instead of the test one
	IsProduction bool
}
