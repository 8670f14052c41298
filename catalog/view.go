package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go-storefront/models"
)

// VisibleProducts derives the product list the user sees: a pure function of
// the catalog, the search text and the sort option. The input slice is never
// mutated.
//
// The filter keeps products whose name contains searchText case-insensitively
// (empty text matches everything). Sorting by price is stable ascending, so
// equal prices keep their original relative order; sorting by name uses
// locale-aware collation.
func VisibleProducts(products []models.Product, searchText string, sortBy models.SortOption) []models.Product {
	query := strings.ToLower(searchText)
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query == "" || strings.Contains(strings.ToLower(p.Name), query) {
			visible = append(visible, p)
		}
	}

	if sortBy == models.SortByPrice {
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Price.LessThan(visible[j].Price)
		})
	} else {
		c := collate.New(language.English)
		sort.SliceStable(visible, func(i, j int) bool {
			return c.CompareString(visible[i].Name, visible[j].Name) < 0
		})
	}
	return visible
}
