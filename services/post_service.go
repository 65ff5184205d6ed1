package services

import (
	"context"
	"fmt"
	"strings"

	"blog-front/dto"
	"blog-front/internal/logger"
	"blog-front/models"
	"blog-front/parser"
	"blog-front/query"
	"blog-front/renderer"
	"blog-front/source"
)

const (
	siteName        = "Blog"
	recentCount     = 5
	relatedCount    = 3
	seoDescMaxChars = 155
	shareMaxChars   = 120
)

// PostService는 공개 화면(랜딩, 탐색, 상세, 스토리)의 view model을 만든다.
// 매 호출마다 source에서 전체 목록을 새로 가져오며 결과를 캐시하지 않는다.
type PostService struct {
	src      source.PostSource
	pageSize int
}

func NewPostService(src source.PostSource, pageSize int) *PostService {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}
	return &PostService{src: src, pageSize: pageSize}
}

func (s *PostService) PageSize() int { return s.pageSize }

// All은 전체 컬렉션을 그대로 돌려준다. 실패 시 ErrLoadFailed로 감싼다.
func (s *PostService) All(ctx context.Context) ([]models.Post, error) {
	posts, err := s.src.FetchAll(ctx)
	if err != nil {
		logger.ErrorWithFields("post listing failed", logger.Fields{
			"kind":  kind(err),
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return posts, nil
}

type ExploreInput struct {
	Search   string
	Category string
	Sort     string
	Page     int
	PageSize int
}

func (in ExploreInput) state(defaultSize int) query.State {
	st := query.NewState(defaultSize)
	if in.PageSize > 0 {
		st.PageSize = in.PageSize
	}
	st.SearchTerm = in.Search
	st.SelectedCategory = in.Category
	st.SortBy = query.ParseSortKey(in.Sort)
	if in.Page > 0 {
		st.CurrentPage = in.Page
	}
	return st
}

// Explore는 탐색 화면 한 페이지를 만든다.
func (s *PostService) Explore(ctx context.Context, in ExploreInput) (dto.ExploreDTO, error) {
	posts, err := s.All(ctx)
	if err != nil {
		return dto.ExploreDTO{}, err
	}

	st := in.state(s.pageSize)
	res := query.Apply(posts, st)
	return dto.ExploreDTO{
		Query: dto.QueryStateDTO{
			SearchTerm:       st.SearchTerm,
			SelectedCategory: st.SelectedCategory,
			SortBy:           string(st.SortBy),
			CurrentPage:      st.CurrentPage,
			PageSize:         st.PageSize,
		},
		Posts: dto.PaginationPostDTO{
			Data:       dto.NewPostDTOs(res.Page),
			Page:       st.CurrentPage,
			PageSize:   st.PageSize,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
		Categories: filterItems(query.CategoryCounts(posts)),
	}, nil
}

// Landing은 가장 최근 글 하나와 그 다음 다섯 개를 고른다.
func (s *PostService) Landing(ctx context.Context) (dto.LandingDTO, error) {
	posts, err := s.All(ctx)
	if err != nil {
		return dto.LandingDTO{}, err
	}

	out := dto.LandingDTO{
		Recent:     []dto.PostDTO{},
		Categories: filterItems(query.CategoryCounts(posts)),
	}
	if len(posts) == 0 {
		return out, nil
	}

	sorted := query.Apply(posts, query.State{PageSize: len(posts)}).Page
	featured := dto.NewPostDTO(sorted[0])
	out.Featured = &featured
	end := min(1+recentCount, len(sorted))
	out.Recent = dto.NewPostDTOs(sorted[1:end])
	return out, nil
}

// Detail은 id로 글을 찾아 본문 HTML, SEO 정보, 같은 스토리의 관련 글(최대 3개)을 붙인다.
func (s *PostService) Detail(ctx context.Context, id string) (dto.PostDetailDTO, error) {
	posts, err := s.All(ctx)
	if err != nil {
		return dto.PostDetailDTO{}, err
	}

	var found *models.Post
	for i := range posts {
		if posts[i].ID == id {
			found = &posts[i]
			break
		}
	}
	if found == nil {
		return dto.PostDetailDTO{}, ErrPostNotFound
	}

	related := make([]models.Post, 0, relatedCount)
	for _, p := range posts {
		if len(related) == relatedCount {
			break
		}
		if p.Story == found.Story && p.ID != found.ID {
			related = append(related, p)
		}
	}

	html, err := renderer.Markdown(found.Text)
	if err != nil {
		logger.WarnWithFields("post body render failed", logger.Fields{"id": found.ID, "error": err.Error()})
		html = renderer.ErrorHTML
	}
	plain := parser.PlainText(html)
	if plain == "" {
		plain = strings.TrimSpace(found.Text)
	}

	desc := parser.Truncate(plain, seoDescMaxChars, "")
	if desc == "" {
		desc = found.Title
	}

	return dto.PostDetailDTO{
		Post:      dto.NewPostDTO(*found),
		HTML:      html,
		ShareText: parser.Truncate(plain, shareMaxChars, "") + "…",
		SEO: dto.SEODTO{
			Title:       found.Title + " | " + siteName,
			Description: desc,
		},
		Related: dto.NewPostDTOs(related),
	}, nil
}

// Story는 스토리 이름을 대소문자 구분 없이 비교해 해당 글을 최신순으로 돌려준다.
func (s *PostService) Story(ctx context.Context, story string) (dto.StoryDTO, error) {
	posts, err := s.All(ctx)
	if err != nil {
		return dto.StoryDTO{}, err
	}

	story = strings.TrimSpace(story)
	out := dto.StoryDTO{Story: story, Posts: []dto.PostDTO{}}
	matched := make([]models.Post, 0)
	for _, p := range posts {
		if strings.EqualFold(p.Story, story) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return out, nil
	}
	out.Story = matched[0].Story
	query.Sort(matched, query.SortByDate)
	out.Posts = dto.NewPostDTOs(matched)
	return out, nil
}

func (s *PostService) Categories(ctx context.Context) (dto.CategoryFilterDTO, error) {
	posts, err := s.All(ctx)
	if err != nil {
		return dto.CategoryFilterDTO{}, err
	}
	return dto.CategoryFilterDTO{Items: filterItems(query.CategoryCounts(posts))}, nil
}

func filterItems(counts []query.CategoryCount) []dto.FilterItem {
	out := make([]dto.FilterItem, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.FilterItem{Name: c.Name, Count: c.Count})
	}
	return out
}
