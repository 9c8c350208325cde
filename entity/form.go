package entity

import (
	"net/url"
	"strings"
)

// Form describes a submittable payment form. Any rendering layer (HTML page,
// URL-encoded HTTP body) consumes it the same way.
type Form struct {
	Name    string  `json:"name"`
	Method  string  `json:"method"`
	Action  string  `json:"action"`
	EncType string  `json:"enctype"`
	Fields  []Field `json:"fields"`
}

// Value returns the value of the first hidden field with the given name.
func (f *Form) Value(name string) (string, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// HasChecksum reports whether the form carries a checksum and can be submitted.
func (f *Form) HasChecksum() bool {
	_, ok := f.Value("CheckSum")
	return ok
}

// Encode returns the URL-encoded request body, keeping field order.
func (f *Form) Encode() string {
	var body strings.Builder
	for i, field := range f.Fields {
		if i > 0 {
			body.WriteByte('&')
		}
		body.WriteString(url.QueryEscape(field.Name))
		body.WriteByte('=')
		body.WriteString(url.QueryEscape(field.Value))
	}
	return body.String()
}
