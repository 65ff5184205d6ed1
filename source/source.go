// Package source는 전체 포스트 목록을 가져오는 전략들을 제공한다.
// 어떤 전략을 쓸지는 조립 시점에 config 로 한 번 결정되고 이후 바뀌지 않는다.
package source

import (
	"context"

	"blog-front/backend"
	"blog-front/models"
	"blog-front/repositories"
)

// PostSource는 전체 포스트 컬렉션을 한 번에 돌려준다.
// 실패하면 부분 결과 없이 에러만 반환한다. 순서는 보장하지 않는다.
type PostSource interface {
	FetchAll(ctx context.Context) ([]models.Post, error)
}

// Func는 함수를 PostSource로 쓴다.
type Func func(ctx context.Context) ([]models.Post, error)

func (f Func) FetchAll(ctx context.Context) ([]models.Post, error) { return f(ctx) }

// BackendSource는 원격 backend 의 GET /manage/all 을 사용한다.
type BackendSource struct {
	client *backend.Client
}

func NewBackendSource(client *backend.Client) *BackendSource {
	return &BackendSource{client: client}
}

func (s *BackendSource) FetchAll(ctx context.Context) ([]models.Post, error) {
	return s.client.FetchAll(ctx)
}

// MongoSource는 backend 저장소(blogs 컬렉션)를 직접 읽는다.
type MongoSource struct {
	repo *repositories.BlogRepository
}

func NewMongoSource(repo *repositories.BlogRepository) *MongoSource {
	return &MongoSource{repo: repo}
}

func (s *MongoSource) FetchAll(ctx context.Context) ([]models.Post, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return posts, nil
}
