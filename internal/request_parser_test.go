package internal

import (
	"cpay/entity"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseFieldMap_KeepsKeyOrder(t *testing.T) {
	fields, err := ParseFieldMap([]byte(`{"Zip":"1000","AmountToPay":100,"City":" Skopje ","Paid":true}`))
	require.NoError(t, err)

	assert.Equal(t, []entity.Field{
		{Name: "Zip", Value: "1000"},
		{Name: "AmountToPay", Value: "100"},
		{Name: "City", Value: " Skopje "},
		{Name: "Paid", Value: "true"},
	}, fields.Fields())
}

func TestParseFieldMap_NumberLiteral(t *testing.T) {
	fields, err := ParseFieldMap([]byte(`{"AmountToPay":12.50}`))
	require.NoError(t, err)

	value, _ := fields.Get("AmountToPay")
	assert.Equal(t, "12.50", value)
}

func TestParseFieldMap_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	fields, err := ParseFieldMap([]byte(`{"A":"1","B":"2","A":"3"}`))
	require.NoError(t, err)

	assert.Equal(t, []entity.Field{{Name: "A", Value: "3"}, {Name: "B", Value: "2"}}, fields.Fields())
}

func TestParseFieldMap_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"A":`},
		{"array", `["A"]`},
		{"string", `"A"`},
		{"null value", `{"A":null}`},
		{"nested object", `{"A":{"B":"1"}}`},
		{"nested array", `{"A":[1]}`},
		{"invalid utf-8 value", "{\"A\":\"\xff\"}"},
		{"invalid utf-8 key", "{\"\xc3\":\"1\"}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := ParseFieldMap([]byte(tt.body))
			assert.Nil(t, fields)
			assert.True(t, errors.Is(err, ErrBadRequest))
		})
	}
}
