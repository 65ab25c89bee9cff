package business

import "sort"

// Tax is a tax definition supplied by the reference data service.
// Rate taxes are a percentage of a line base; fixed taxes (tax stamps) are an
// amount added once to the document total.
type Tax struct {
	ID     int64   `json:"id"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	IsRate bool    `json:"isRate"`
}

// TaxWithholding is a withholding rate retained at payment time
type TaxWithholding struct {
	ID    int64   `json:"id"`
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// TaxCatalog indexes the known taxes by id
type TaxCatalog map[int64]Tax

// NewTaxCatalog builds a catalog from a tax list. Later duplicates win.
func NewTaxCatalog(taxes []Tax) TaxCatalog {
	catalog := make(TaxCatalog, len(taxes))
	for _, tax := range taxes {
		catalog[tax.ID] = tax
	}
	return catalog
}

// Lookup returns the tax with the given id
func (c TaxCatalog) Lookup(id int64) (Tax, bool) {
	tax, ok := c[id]
	return tax, ok
}

// Taxes returns the catalog content ordered by id
func (c TaxCatalog) Taxes() []Tax {
	taxes := make([]Tax, 0, len(c))
	for _, tax := range c {
		taxes = append(taxes, tax)
	}
	sort.Slice(taxes, func(i, j int) bool { return taxes[i].ID < taxes[j].ID })
	return taxes
}

// TaxSummaryMetadata is the {taxId, amount} pair persisted in document metadata
type TaxSummaryMetadata struct {
	TaxID  int64   `json:"taxId"`
	Amount float64 `json:"amount"`
}
