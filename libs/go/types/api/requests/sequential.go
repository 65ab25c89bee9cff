package requests

import "time"

// FormatSequentialRequest renders a sequential number. Date defaults to now.
type FormatSequentialRequest struct {
	Prefix          string     `json:"prefix" binding:"required"`
	DynamicSequence string     `json:"dynamicSequence" binding:"required,oneof=yy yyyy yy-MM yyyy-MM"`
	Next            int        `json:"next" binding:"gte=0"`
	Date            *time.Time `json:"date,omitempty"`
}

// ParseSequentialRequest parses a formatted sequential number
type ParseSequentialRequest struct {
	Value string `json:"value" binding:"required"`
}
