package domain

// RequestKind defines what a batch request asks for.
type RequestKind string

const (
	KindMoney RequestKind = "money" // formatted amount with symbol
	KindWords RequestKind = "words" // amount spelled out in words
	KindTime  RequestKind = "time"  // clock time with day period
)

// ConversionRequest is a single row of batch input.
type ConversionRequest struct {
	ID       string      `json:"id"`
	Kind     RequestKind `json:"kind"`
	Currency string      `json:"currency,omitempty"`
	Value    string      `json:"value"`
	Mode     string      `json:"mode,omitempty"`

	// KhmerDigits is nil when the row leaves the glyph policy to the currency default.
	KhmerDigits *bool `json:"khmer_digits,omitempty"`

	Source string `json:"source"` // e.g., "requests.csv"
}
