package business

import "github.com/cyphera/cyphera-expense/libs/go/money"

// Article is the catalogue item a line refers to
type Article struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ArticleEntry is one line of an expense invoice or quotation.
// SubTotal and Total are derived and rewritten on every recomputation.
type ArticleEntry struct {
	ID           int64        `json:"id,omitempty"`
	Article      Article      `json:"article"`
	Quantity     float64      `json:"quantity"`
	UnitPrice    float64      `json:"unit_price"`
	Discount     float64      `json:"discount"`
	DiscountType DiscountType `json:"discount_type"`
	TaxIDs       []int64      `json:"taxes"`
	SubTotal     float64      `json:"subTotal"`
	Total        float64      `json:"total"`
}

// LineDiscount returns the entry discount as a Discount value
func (e ArticleEntry) LineDiscount() Discount {
	return Discount{Value: e.Discount, Type: e.DiscountType}
}

// ArticleEntryTotals holds every intermediate figure of a line computation
type ArticleEntryTotals struct {
	Base          money.Amount
	AfterDiscount money.Amount
	TaxAmount     money.Amount
	SubTotal      float64
	Total         float64
}
