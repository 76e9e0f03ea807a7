package domain

// ConversionResult is the outcome of a single request.
type ConversionResult struct {
	Request ConversionRequest `json:"request"`
	Text    string            `json:"text,omitempty"`

	// Set when the request could not be converted.
	ErrorKind    string `json:"error_kind,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Failed reports whether the conversion produced an error.
func (r ConversionResult) Failed() bool {
	return r.ErrorKind != ""
}

// BatchSummary provides high-level statistics of a batch run.
type BatchSummary struct {
	RunID           string              `json:"run_id"`
	TotalRequests   int                 `json:"total_requests"`
	Succeeded       int                 `json:"succeeded"`
	Failed          int                 `json:"failed"`
	RequestsPerKind map[RequestKind]int `json:"requests_per_kind"`
	ErrorsPerKind   map[string]int      `json:"errors_per_kind"`
}

// BatchReport is the top-level structure for the batch JSON output.
type BatchReport struct {
	Summary BatchSummary       `json:"summary"`
	Results []ConversionResult `json:"results"`
}
