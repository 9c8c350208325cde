package entity

// ErrorResponse is returned by the HTTP API when a request is rejected.
type ErrorResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missing_fields,omitempty"`
	InvalidFields []string `json:"invalid_fields,omitempty"`
	RequestId     string   `json:"request_id,omitempty"`
}
