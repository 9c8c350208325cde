package internal

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MissingFieldsError reports every mandatory field absent from a payment request,
// in schema order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("the following mandatory fields are missing in the payment request: [%s]", strings.Join(e.Fields, ", "))
}

// InvalidFieldsError reports every field of a payment request that CPay does not accept,
// in request order.
type InvalidFieldsError struct {
	Fields []string
}

func (e *InvalidFieldsError) Error() string {
	return fmt.Sprintf("the following fields are invalid in the payment request: [%s]", strings.Join(e.Fields, ", "))
}

// IsValidationError reports whether err is caused by a request not matching the field schema.
// Such errors point to an integration bug and must not be retried.
func IsValidationError(err error) bool {
	var missing *MissingFieldsError
	var invalid *InvalidFieldsError
	return errors.As(err, &missing) || errors.As(err, &invalid)
}

// HTTPStatus maps an error to the status code returned by the API.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidationError(err), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var ErrBadRequest = errors.New("bad request")
