package models

import (
	"github.com/shopspring/decimal"
)

// CartLine represents one product's presence in the cart. Quantity is always
// at least 1; a line that would drop to 0 is removed from the cart instead.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the ordered collection of cart lines for one session. Insertion
// order is preserved regardless of later quantity changes.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Total returns the exact sum of price times quantity over all lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Count returns the number of distinct lines, shown on the cart badge.
func (c Cart) Count() int {
	return len(c.Lines)
}
