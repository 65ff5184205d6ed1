package source

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"blog-front/models"
)

//go:embed mock_posts.yaml
var mockPostsYAML []byte

// MockSource는 backend 없이 개발할 때 쓰는 고정 샘플 포스트를 돌려준다.
type MockSource struct {
	posts []models.Post
}

func NewMockSource() (*MockSource, error) {
	var doc struct {
		Blogs []models.Post `yaml:"blogs"`
	}
	if err := yaml.Unmarshal(mockPostsYAML, &doc); err != nil {
		return nil, fmt.Errorf("mock posts: %w", err)
	}
	return &MockSource{posts: doc.Blogs}, nil
}

// FetchAll은 호출자가 수정해도 안전하도록 복사본을 반환한다.
func (s *MockSource) FetchAll(ctx context.Context) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.posts), nil
}
