package services

import (
	"context"
	"strings"
	"time"

	"blog-front/dto"
	"blog-front/internal/logger"
	"blog-front/models"
	"blog-front/parser"
	"blog-front/renderer"
)

const (
	excerptMaxChars   = 100
	displayDateFmt    = "Jan 2, 2006"
	defaultStoryColor = "#6c757d"
)

var storyColors = map[string]string{
	"tech":     "#007bff",
	"personal": "#28a745",
	"tutorial": "#ffc107",
	"review":   "#dc3545",
	"news":     "#17a2b8",
}

// AdminBackend는 관리자 API 호출이다. *backend.Client가 구현한다.
type AdminBackend interface {
	ListAdmin(ctx context.Context, token string) ([]models.Post, error)
	CreatePost(ctx context.Context, token string, in models.NewPostInput) (string, error)
	DeletePost(ctx context.Context, token, id string) error
}

// AdminService는 관리 화면의 글 목록/작성/삭제/미리보기를 담당한다.
// backend 의 401 은 그대로 돌려보내 호출자가 세션을 정리하게 한다.
type AdminService struct {
	client AdminBackend
	now    func() time.Time
}

func NewAdminService(client AdminBackend) *AdminService {
	return &AdminService{client: client, now: time.Now}
}

// -------------------- Posts --------------------

func (s *AdminService) ListPosts(ctx context.Context, token string) (dto.AdminPostListDTO, error) {
	posts, err := s.client.ListAdmin(ctx, token)
	if err != nil {
		logger.ErrorWithFields("admin post list failed", logger.Fields{"kind": kind(err), "error": err.Error()})
		return dto.AdminPostListDTO{}, formError(err, MsgAdminListFailed, MsgLoadFailed)
	}

	items := make([]dto.AdminPostDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, NewAdminPostDTO(p))
	}
	return dto.AdminPostListDTO{Total: len(items), Items: items}, nil
}

// CreatePost는 입력을 정리/검증한 뒤 backend 에 보낸다.
func (s *AdminService) CreatePost(ctx context.Context, token string, req dto.CreatePostRequestDTO) (dto.CreatePostResponseDTO, error) {
	in := models.NewPostInput{
		Title: req.Title,
		Text:  req.Text,
		Story: req.Story,
		Tags:  req.Tags,
		Date:  req.Date,
	}.Normalize(s.now())
	if err := in.Validate(); err != nil {
		return dto.CreatePostResponseDTO{}, &UserError{Message: err.Error(), Err: ErrInvalidInput}
	}

	id, err := s.client.CreatePost(ctx, token, in)
	if err != nil {
		logger.ErrorWithFields("admin post create failed", logger.Fields{"kind": kind(err), "title": in.Title, "error": err.Error()})
		return dto.CreatePostResponseDTO{}, formError(err, MsgCreateRejected, MsgCreateFailed)
	}
	logger.InfoWithFields("admin post created", logger.Fields{"id": id, "title": in.Title})
	return dto.CreatePostResponseDTO{Message: "post created successfully", PostID: id}, nil
}

func (s *AdminService) DeletePost(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" {
		return &UserError{Message: "id is required", Err: ErrInvalidInput}
	}
	if err := s.client.DeletePost(ctx, token, id); err != nil {
		logger.ErrorWithFields("admin post delete failed", logger.Fields{"kind": kind(err), "id": id, "error": err.Error()})
		return formError(err, MsgDeleteRejected, MsgDeleteFailed)
	}
	logger.InfoWithFields("admin post deleted", logger.Fields{"id": id})
	return nil
}

// Preview는 에디터 미리보기 HTML을 만든다. 변환 실패 시 에러 문단을 돌려준다.
func (s *AdminService) Preview(markdown string) dto.PreviewResponseDTO {
	return dto.PreviewResponseDTO{HTML: renderer.Preview(markdown)}
}

// -------------------- presentation helpers --------------------

func NewAdminPostDTO(p models.Post) dto.AdminPostDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	files := p.Files
	if files == nil {
		files = []string{}
	}
	return dto.AdminPostDTO{
		ID:          p.ID,
		Title:       p.Title,
		Story:       p.Story,
		StoryColor:  StoryColor(p.Story),
		Excerpt:     parser.Truncate(p.Text, excerptMaxChars, "..."),
		Date:        p.Date,
		DisplayDate: DisplayDate(p.Date),
		Tags:        tags,
		Files:       files,
	}
}

// StoryColor는 스토리 이름(대소문자 무시)에 대응하는 색을 돌려준다.
func StoryColor(story string) string {
	if c, ok := storyColors[strings.ToLower(strings.TrimSpace(story))]; ok {
		return c
	}
	return defaultStoryColor
}

// DisplayDate는 "Jan 2, 2006" 형식으로 바꾼다. 해석할 수 없으면 원래 문자열을 그대로 쓴다.
func DisplayDate(date string) string {
	t, ok := models.ParseDate(date)
	if !ok {
		return date
	}
	return t.Format(displayDateFmt)
}
