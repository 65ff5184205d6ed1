package query

import "strings"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByTitle    SortKey = "title"
	SortByCategory SortKey = "category"
)

const DefaultPageSize = 10

// ParseSortKey maps user input to a SortKey. Unknown values fall back to date.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByTitle:
		return SortByTitle
	case SortByCategory, "story":
		return SortByCategory
	default:
		return SortByDate
	}
}

// State is the search/filter/sort/pagination selection of one view.
// It is created per view activation and never sent to the backend.
type State struct {
	SearchTerm       string  `json:"search_term"`
	SelectedCategory string  `json:"selected_category"`
	SortBy           SortKey `json:"sort_by"`
	CurrentPage      int     `json:"current_page"`
	PageSize         int     `json:"page_size"`
}

// NewState returns the default state for a view with the given page size.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{SortBy: SortByDate, CurrentPage: 1, PageSize: pageSize}
}

func (s State) normalized() State {
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.CurrentPage < 1 {
		s.CurrentPage = 1
	}
	if s.SortBy == "" {
		s.SortBy = SortByDate
	}
	return s
}
