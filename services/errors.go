package services

import (
	"errors"

	"blog-front/backend"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrLoadFailed는 포스트 목록을 가져오지 못했을 때다. 원인 에러도 함께 감싼다.
	ErrLoadFailed = errors.New("failed to load posts")
)

const (
	MsgLoadFailed      = "Failed to load blog posts. Please try again."
	MsgAdminListFailed = "Failed to load blog posts"
	MsgCreateFailed    = "Failed to create blog post. Please try again."
	MsgCreateRejected  = "Failed to create blog post"
	MsgDeleteFailed    = "Failed to delete blog post. Please try again."
	MsgDeleteRejected  = "Failed to delete blog post"
)

// UserError는 화면에 그대로 보여줄 메시지와 원인 에러를 함께 담는다.
// errors.Is(err, backend.ErrAuth) 같은 검사는 원인 에러로 전달된다.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }
func (e *UserError) Unwrap() error { return e.Err }

// UserMessage는 err에서 사용자용 메시지를 꺼낸다. 없으면 fallback.
func UserMessage(err error, fallback string) string {
	var ue *UserError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return fallback
}

// formError는 폼 제출 실패를 사용자 메시지로 바꾼다.
// backend가 success:false 와 함께 보낸 메시지가 있으면 그것을, 없으면 fallback을 쓴다.
func formError(err error, rejected, fallback string) error {
	if errors.Is(err, backend.ErrAuth) {
		return err
	}
	var be *backend.BackendError
	if errors.As(err, &be) {
		if be.Message != "" {
			return &UserError{Message: be.Message, Err: err}
		}
		if be.StatusCode < 300 {
			return &UserError{Message: rejected, Err: err}
		}
	}
	return &UserError{Message: fallback, Err: err}
}

// kind는 로그에 남길 실패 분류다.
func kind(err error) string {
	switch {
	case errors.Is(err, backend.ErrAuth):
		return "auth"
	case errors.Is(err, backend.ErrNetwork):
		return "network"
	case errors.Is(err, backend.ErrBackend):
		return "backend"
	case errors.Is(err, backend.ErrParse):
		return "parse"
	default:
		return "unknown"
	}
}
