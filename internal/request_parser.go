package internal

import (
	"cpay/entity"
	"fmt"
	"github.com/tidwall/gjson"
	"unicode/utf8"
)

// ParseFieldMap reads a flat JSON object into a FieldMap, keeping key order.
// Strings are taken verbatim, numbers by their literal text and booleans as
// true or false. Null, nested objects and arrays are rejected.
func ParseFieldMap(body []byte) (*entity.FieldMap, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed json", ErrBadRequest)
	}
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: request body is not valid utf-8", ErrBadRequest)
	}
	object := gjson.ParseBytes(body)
	if !object.IsObject() {
		return nil, fmt.Errorf("%w: json object expected", ErrBadRequest)
	}

	fields := entity.NewFieldMap()
	var err error
	object.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.String:
			fields.Set(key.String(), value.Str)
		case gjson.Number:
			fields.Set(key.String(), value.Raw)
		case gjson.True, gjson.False:
			fields.Set(key.String(), value.String())
		default:
			err = fmt.Errorf("%w: field %s must be a string, number or boolean", ErrBadRequest, key.String())
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}
