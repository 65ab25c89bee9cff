package business

// Currency is a currency as supplied by the reference data service.
// DigitAfterComma is nil when the backend did not provide a precision.
type Currency struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	Label           string `json:"label,omitempty"`
	Symbol          string `json:"symbol"`
	DigitAfterComma *int32 `json:"digitAfterComma,omitempty"`
}

// SameAs reports whether both currencies are known and share an id
func (c *Currency) SameAs(other *Currency) bool {
	if c == nil || other == nil {
		return false
	}
	return c.ID == other.ID
}

// Digits returns a pointer to n, for building currencies inline
func Digits(n int32) *int32 {
	return &n
}
