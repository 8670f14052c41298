package models

import (
	"github.com/shopspring/decimal"
)

// Product represents one catalog entry. Products are created by the catalog
// source at load time and never mutated afterwards.
type Product struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Images []string        `json:"images"`
}

// PrimaryImage returns the first image reference, used as the display image.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
