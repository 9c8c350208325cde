// Package entity defines data models for the CPay payment form service.
package entity

import (
	"strings"
	"unicode"
)

// Field is a single name/value pair of a payment request.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FieldMap is an insertion-ordered mapping of field names to values.
// The checksum depends on traversal order, so the same FieldMap must be used
// both for the form and for the checksum.
type FieldMap struct {
	fields []Field
	index  map[string]int
}

func NewFieldMap() *FieldMap {
	return &FieldMap{
		index: make(map[string]int),
	}
}

// FieldMapOf builds a FieldMap from alternating name, value arguments.
// A trailing name without a value is ignored.
func FieldMapOf(pairs ...string) *FieldMap {
	m := NewFieldMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// Set appends a new field or replaces the value of an existing one in place.
func (m *FieldMap) Set(name, value string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[name]; ok {
		m.fields[i].Value = value
		return
	}
	m.index[name] = len(m.fields)
	m.fields = append(m.fields, Field{Name: name, Value: value})
}

func (m *FieldMap) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.fields[i].Value, true
}

func (m *FieldMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.fields)
}

// Keys returns field names in insertion order.
func (m *FieldMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.fields))
	for i, f := range m.fields {
		keys[i] = f.Name
	}
	return keys
}

// Fields returns a copy of the fields in insertion order.
func (m *FieldMap) Fields() []Field {
	if m == nil {
		return nil
	}
	fields := make([]Field, len(m.fields))
	copy(fields, m.fields)
	return fields
}

// Trimmed returns a copy with leading and trailing whitespace removed from every value.
func (m *FieldMap) Trimmed() *FieldMap {
	trimmed := NewFieldMap()
	for _, f := range m.Fields() {
		trimmed.Set(f.Name, TrimValue(f.Value))
	}
	return trimmed
}

// TrimValue strips leading and trailing white space the way CPay does:
// the byte order mark counts as space, NEL (U+0085) does not.
func TrimValue(value string) string {
	return strings.TrimFunc(value, func(r rune) bool {
		if r == '\u0085' {
			return false
		}
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
