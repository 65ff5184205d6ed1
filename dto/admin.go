package dto

// AdminPostDTO is a row of the admin post management table.
type AdminPostDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Story       string   `json:"story"`
	StoryColor  string   `json:"story_color" example:"#007bff"`
	Excerpt     string   `json:"excerpt"`
	Date        string   `json:"date"`
	DisplayDate string   `json:"display_date" example:"Jul 29, 2025"`
	Tags        []string `json:"tags"`
	Files       []string `json:"files"`
}

// AdminPostListDTO wraps the admin table.
type AdminPostListDTO struct {
	Total int            `json:"total"`
	Items []AdminPostDTO `json:"items"`
}

// CreatePostRequestDTO is the editor submission.
type CreatePostRequestDTO struct {
	Title string   `json:"title" binding:"required"`
	Text  string   `json:"text" binding:"required"`
	Story string   `json:"story" binding:"required"`
	Tags  []string `json:"tags"`
	Date  string   `json:"date"` // ISO8601, defaults to today
}

// CreatePostResponseDTO is explicitly defined for Swagger.
type CreatePostResponseDTO struct {
	Message string `json:"message"`
	PostID  string `json:"post_id"`
}

type LoginRequestDTO struct {
	Password string `json:"password"`
}

type SessionDTO struct {
	Authenticated bool `json:"authenticated"`
}

type PreviewRequestDTO struct {
	Markdown string `json:"markdown"`
}

type PreviewResponseDTO struct {
	HTML string `json:"html"`
}
