package dto

// FilterItem represents a single filter option with its count
type FilterItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryFilterDTO represents the response for category filters
type CategoryFilterDTO struct {
	Items []FilterItem `json:"items"`
}

// QueryStateDTO echoes the explorer selection that produced a page.
type QueryStateDTO struct {
	SearchTerm       string `json:"search_term"`
	SelectedCategory string `json:"selected_category"`
	SortBy           string `json:"sort_by" example:"date"`
	CurrentPage      int    `json:"current_page"`
	PageSize         int    `json:"page_size"`
}

// ExploreDTO is one explorer page with the filter options it was built from.
type ExploreDTO struct {
	Query      QueryStateDTO     `json:"query"`
	Posts      PaginationPostDTO `json:"posts"`
	Categories []FilterItem      `json:"categories"`
}
