package internal

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"missing", &MissingFieldsError{Fields: []string{FieldDetails1}}, http.StatusBadRequest},
		{"invalid wrapped", fmt.Errorf("form: %w", &InvalidFieldsError{Fields: []string{"Foo"}}), http.StatusBadRequest},
		{"bad request", fmt.Errorf("%w: malformed json", ErrBadRequest), http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	missing := &MissingFieldsError{Fields: []string{FieldDetails1, FieldDetails2}}
	assert.Equal(t, "the following mandatory fields are missing in the payment request: [Details1, Details2]", missing.Error())

	invalid := &InvalidFieldsError{Fields: []string{"Foo"}}
	assert.Equal(t, "the following fields are invalid in the payment request: [Foo]", invalid.Error())
	assert.True(t, IsValidationError(invalid))
	assert.False(t, IsValidationError(ErrBadRequest))
}
