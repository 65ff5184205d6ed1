package source

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-front/backend"
	"blog-front/internal/logger"
	"blog-front/models"
)

const DefaultMaxRetries = 2

// retrying은 일시적 실패에 한해 전체 호출을 다시 시도한다.
// 인증/파싱 실패는 바로 돌려준다.
type retrying struct {
	inner      PostSource
	maxRetries uint64
	delay      time.Duration
}

// WithRetry는 src를 최대 maxRetries 회 추가로 재시도하도록 감싼다.
// maxRetries가 0이면 DefaultMaxRetries를 쓴다.
func WithRetry(src PostSource, maxRetries uint64, delay time.Duration) PostSource {
	if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	return &retrying{inner: src, maxRetries: maxRetries, delay: delay}
}

func (r *retrying) FetchAll(ctx context.Context) ([]models.Post, error) {
	var (
		posts   []models.Post
		attempt int
	)
	b := retry.WithMaxRetries(r.maxRetries, retry.NewConstant(r.delay))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		out, err := r.inner.FetchAll(ctx)
		if err != nil {
			fields := logger.Fields{"attempt": attempt, "error": err.Error()}
			if transient(err) {
				logger.WarnWithFields("post fetch failed, retrying", fields)
				return retry.RetryableError(err)
			}
			logger.ErrorWithFields("post fetch failed", fields)
			return err
		}
		posts = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func transient(err error) bool {
	return backend.Transient(err) || mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
