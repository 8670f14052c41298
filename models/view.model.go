package models

// SortOption selects how the visible product list is ordered.
type SortOption int

const (
	SortByName SortOption = iota
	SortByPrice
)

// ParseSortOption maps the user-facing selector values to a SortOption.
// Unknown input falls back to sorting by name, the default.
func ParseSortOption(s string) SortOption {
	if s == "price" {
		return SortByPrice
	}
	return SortByName
}

func (s SortOption) String() string {
	if s == SortByPrice {
		return "price"
	}
	return "name"
}

// ViewState holds one session's transient UI state. It is derived input for
// the catalog view, never persisted.
type ViewState struct {
	SearchText    string     `json:"search_text"`
	Sort          SortOption `json:"sort"`
	DrawerVisible bool       `json:"drawer_visible"`
}
