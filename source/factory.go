package source

import (
	"context"
	"fmt"
	"net/http"

	"blog-front/backend"
	"blog-front/config"
	"blog-front/db"
	"blog-front/repositories"
)

// FromConfig는 cfg.Source 에 맞는 PostSource를 조립한다.
// 반환된 close 함수는 항상 nil이 아니며 사용 종료 시 호출한다.
func FromConfig(ctx context.Context, cfg config.AppConfig, httpClient *http.Client) (PostSource, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.SourceMock:
		src, err := NewMockSource()
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil

	case config.SourceMongo:
		cl, database, err := db.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, noop, err
		}
		repo := repositories.NewBlogRepository(database, cfg.Mongo.Collection)
		closeFn := func() { db.Disconnect(context.Background(), cl) }
		return WithRetry(NewMongoSource(repo), cfg.Retry.MaxRetries, cfg.Retry.Delay), closeFn, nil

	case config.SourceBackend, "":
		client := backend.New(cfg.APIURL(), httpClient)
		return WithRetry(NewBackendSource(client), cfg.Retry.MaxRetries, cfg.Retry.Delay), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown source %q", cfg.Source)
}
