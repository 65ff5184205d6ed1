package dto

// PaginationPostDTO is a concrete swagger-friendly type for paginated posts response.
// Page is 1-based; TotalPages is never below 1.
// swagger:model PaginationPostDTO
type PaginationPostDTO struct {
	Data       []PostDTO `json:"data"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages"`
}
