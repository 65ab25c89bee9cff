package business

// DiscountType tells how a discount value is interpreted
type DiscountType string

const (
	// DiscountTypePercentage is a percentage of the base amount
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	// DiscountTypeAmount is an absolute amount in the document currency
	DiscountTypeAmount DiscountType = "AMOUNT"
)

// IsValid reports whether the type is one of the known discount types
func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeAmount
}

// Discount is a line-level or document-level discount
type Discount struct {
	Value float64      `json:"value"`
	Type  DiscountType `json:"type"`
}

// IsZero reports whether applying the discount leaves the base unchanged
func (d Discount) IsZero() bool {
	return d.Value == 0
}
