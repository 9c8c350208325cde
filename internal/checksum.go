package internal

import (
	"cpay/entity"
	"fmt"
	"github.com/golang-module/dongle"
	"strings"
	"unicode/utf16"
)

// ChecksumEncoder produces the CheckSum and CheckSumHeader fields CPay uses
// to verify that a payment request was not modified on its way.
type ChecksumEncoder struct {
	secret string // merchant auth key
	schema *FieldSchema
}

func NewChecksumEncoder(secret string, schema *FieldSchema) *ChecksumEncoder {
	if schema == nil {
		schema = DefaultSchema
	}
	return &ChecksumEncoder{
		secret: secret,
		schema: schema,
	}
}

// CreateChecksum validates the fields against the schema and encodes them.
// Nothing is computed for a map that fails validation.
func (e *ChecksumEncoder) CreateChecksum(fields *entity.FieldMap) (*entity.ChecksumResult, error) {
	validated, err := Validate(fields, e.schema)
	if err != nil {
		return nil, err
	}
	return Encode(validated, e.secret), nil
}

// Validate checks that all mandatory fields are present and no unknown field is.
// All offending names are reported at once; missing fields are checked first.
func Validate(fields *entity.FieldMap, schema *FieldSchema) (*entity.FieldMap, error) {
	if schema == nil {
		schema = DefaultSchema
	}
	var missing []string
	for _, name := range schema.Mandatory() {
		if !fields.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	var invalid []string
	for _, name := range fields.Keys() {
		if !schema.IsValid(name) {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return nil, &InvalidFieldsError{Fields: invalid}
	}

	return fields, nil
}

// Encode builds the checksum of a validated map.
//
// The header is the field count (2 digits), every field name followed by a comma
// and the length of every trimmed value (3 digits each). The checksum string is the
// header, the trimmed values and the secret, all without separators; the checksum is
// its MD5 as lowercase hex. Counts and lengths wider than their slot are written in full.
func Encode(fields *entity.FieldMap, secret string) *entity.ChecksumResult {
	values := fields.Trimmed().Fields()

	var header strings.Builder
	header.WriteString(fmt.Sprintf("%02d", len(values)))
	for _, field := range values {
		header.WriteString(field.Name)
		header.WriteString(",")
	}
	for _, field := range values {
		header.WriteString(fmt.Sprintf("%03d", valueLength(field.Value)))
	}

	var checksumString strings.Builder
	checksumString.WriteString(header.String())
	for _, field := range values {
		checksumString.WriteString(field.Value)
	}
	checksumString.WriteString(secret)

	return &entity.ChecksumResult{
		Header:         header.String(),
		CheckSumString: checksumString.String(),
		CheckSum:       md5Hex(checksumString.String()),
	}
}

// valueLength counts UTF-16 code units, the way CPay measures string length.
func valueLength(value string) int {
	return len(utf16.Encode([]rune(value)))
}

func md5Hex(text string) string {
	return dongle.Encrypt.FromString(text).ByMd5().ToHexString()
}
