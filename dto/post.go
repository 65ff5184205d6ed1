package dto

import "blog-front/models"

// PostDTO is the public shape of a post.
type PostDTO struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Story string   `json:"story"`
	Date  string   `json:"date"`
	Files []string `json:"files"`
	Tags  []string `json:"tags,omitempty"`
}

func NewPostDTO(p models.Post) PostDTO {
	files := p.Files
	if files == nil {
		files = []string{}
	}
	return PostDTO{
		ID:    p.ID,
		Title: p.Title,
		Text:  p.Text,
		Story: p.Story,
		Date:  p.Date,
		Files: files,
		Tags:  p.Tags,
	}
}

func NewPostDTOs(posts []models.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostDTO(p))
	}
	return out
}

// LandingDTO is the newspaper front page: the most recent post and the next five.
type LandingDTO struct {
	Featured   *PostDTO     `json:"featured"`
	Recent     []PostDTO    `json:"recent"`
	Categories []FilterItem `json:"categories"`
}

type SEODTO struct {
	Title       string `json:"title" example:"Homemade Pesto | Blog"`
	Description string `json:"description"`
}

// PostDetailDTO carries the post, its rendered body and up to three related posts.
type PostDetailDTO struct {
	Post      PostDTO   `json:"post"`
	HTML      string    `json:"html"`
	ShareText string    `json:"share_text"`
	SEO       SEODTO    `json:"seo"`
	Related   []PostDTO `json:"related"`
}

// StoryDTO lists every post of one story, newest first.
type StoryDTO struct {
	Story string    `json:"story"`
	Posts []PostDTO `json:"posts"`
}
