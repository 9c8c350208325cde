package entity

// ChecksumResult is produced fresh for every request and must not be cached:
// CheckSumString embeds request data and the merchant secret.
type ChecksumResult struct {
	// Field count, field names and value lengths; sent as CheckSumHeader
	Header string `json:"CheckSumHeader"`
	// Header, values and secret; never sent to the processor
	CheckSumString string `json:"CheckSumString,omitempty"`
	// Lowercase hex MD5 of CheckSumString; sent as CheckSum
	CheckSum string `json:"CheckSum"`
}

// Public returns a copy safe to expose outside the service.
func (r *ChecksumResult) Public() *ChecksumResult {
	if r == nil {
		return nil
	}
	return &ChecksumResult{
		Header:   r.Header,
		CheckSum: r.CheckSum,
	}
}
