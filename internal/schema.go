package internal

const (
	cpayTestUrl     = "https://www.cpay.com.mk/Client/page/default.aspx?xml_id=/mk-MK/.TestLoginToPay/"
	cpayProdUrl     = "https://www.cpay.com.mk/Client/page/default.aspx?xml_id=/mk-MK/.loginToPay/.simple/"
	cpayFormName    = "C-Pay Form"
	cpayFormEncType = "application/x-www-form-urlencoded"
	cpayFormMethod  = "POST"
	amountCurrency  = "MKD"
)

// request fields
const (
	FieldAmountToPay      = "AmountToPay"
	FieldDetails1         = "Details1"
	FieldDetails2         = "Details2"
	FieldOriginalAmount   = "OriginalAmount"
	FieldOriginalCurrency = "OriginalCurrency"
	FieldFirstName        = "FirstName"
	FieldLastName         = "LastName"
	FieldAddress          = "Address"
	FieldCity             = "City"
	FieldZip              = "Zip"
	FieldCountry          = "Country"
	FieldTelephone        = "Telephone"
	FieldEmail            = "Email"
)

// fields injected from the merchant configuration
const (
	FieldPayToMerchant  = "PayToMerchant"
	FieldMerchantName   = "MerchantName"
	FieldAmountCurrency = "AmountCurrency"
	FieldPaymentOkUrl   = "PaymentOKURL"
	FieldPaymentFailUrl = "PaymentFailURL"
)

// output-only fields
const (
	FieldCheckSum       = "CheckSum"
	FieldCheckSumHeader = "CheckSumHeader"
)

// FieldSchema lists the fields a payment request must and may contain.
// Mandatory fields are a subset of the valid fields.
type FieldSchema struct {
	mandatory []string
	valid     map[string]bool
}

func NewFieldSchema(mandatory []string, optional ...string) *FieldSchema {
	schema := &FieldSchema{
		mandatory: append([]string(nil), mandatory...),
		valid:     make(map[string]bool, len(mandatory)+len(optional)),
	}
	for _, name := range mandatory {
		schema.valid[name] = true
	}
	for _, name := range optional {
		schema.valid[name] = true
	}
	return schema
}

// Mandatory returns the mandatory field names in schema order.
func (s *FieldSchema) Mandatory() []string {
	return append([]string(nil), s.mandatory...)
}

func (s *FieldSchema) IsValid(name string) bool {
	return s.valid[name]
}

// DefaultSchema accepts the caller fields documented by CPay plus the
// fields the payment request builder injects from the merchant configuration.
var DefaultSchema = NewFieldSchema(
	[]string{
		FieldAmountToPay,
		FieldDetails1,
		FieldDetails2,
		FieldOriginalAmount,
		FieldOriginalCurrency,
	},
	FieldFirstName,
	FieldLastName,
	FieldAddress,
	FieldCity,
	FieldZip,
	FieldCountry,
	FieldTelephone,
	FieldEmail,
	FieldPayToMerchant,
	FieldMerchantName,
	FieldAmountCurrency,
	FieldPaymentOkUrl,
	FieldPaymentFailUrl,
)
