package business

import "github.com/cyphera/cyphera-expense/libs/go/money"

// TaxableLine is what the tax aggregator needs from a computed line
type TaxableLine struct {
	TaxIDs        []int64
	AfterDiscount money.Amount
}

// TaxSummaryEntry is the cumulative amount of one tax over a document
type TaxSummaryEntry struct {
	Tax    Tax          `json:"tax"`
	Amount money.Amount `json:"-"`
	Value  float64      `json:"amount"`
}

// TaxSummary is the per-tax breakdown of a document, in first-reference order
type TaxSummary struct {
	Entries []TaxSummaryEntry `json:"entries"`
	index   map[int64]int
}

// NewTaxSummary creates an empty summary
func NewTaxSummary() *TaxSummary {
	return &TaxSummary{Entries: []TaxSummaryEntry{}, index: map[int64]int{}}
}

// Accumulate adds amount to the bucket of tax, creating it on first use
func (s *TaxSummary) Accumulate(tax Tax, amount money.Amount) {
	if s.index == nil {
		s.index = map[int64]int{}
	}
	pos, ok := s.index[tax.ID]
	if !ok {
		s.index[tax.ID] = len(s.Entries)
		s.Entries = append(s.Entries, TaxSummaryEntry{Tax: tax, Amount: amount, Value: amount.Float()})
		return
	}
	entry := &s.Entries[pos]
	entry.Amount = entry.Amount.Add(amount)
	entry.Value = entry.Amount.Float()
}

// Amount returns the cumulative amount of a tax
func (s *TaxSummary) Amount(taxID int64) (money.Amount, bool) {
	pos, ok := s.index[taxID]
	if !ok {
		return money.Amount{}, false
	}
	return s.Entries[pos].Amount, true
}

// Len returns the number of taxes in the summary
func (s *TaxSummary) Len() int {
	return len(s.Entries)
}

// Metadata returns the summary in the {taxId, amount} shape stored with a document
func (s *TaxSummary) Metadata() []TaxSummaryMetadata {
	metadata := make([]TaxSummaryMetadata, 0, len(s.Entries))
	for _, entry := range s.Entries {
		metadata = append(metadata, TaxSummaryMetadata{TaxID: entry.Tax.ID, Amount: entry.Value})
	}
	return metadata
}
