package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork: 요청이 backend에 도달하지 못했거나 응답이 없었다.
	ErrNetwork = errors.New("backend unreachable")

	// ErrBackend: backend가 실패 상태 코드나 success:false 를 돌려줬다.
	ErrBackend = errors.New("backend error")

	// ErrAuth는 ErrBackend 중 401에 해당하는 경우다.
	ErrAuth = errors.New("backend rejected credentials")

	// ErrParse: 응답 바디가 기대한 형태가 아니다.
	ErrParse = errors.New("unexpected backend response")
)

// BackendError는 backend가 응답은 했지만 요청을 처리하지 못한 경우다.
// errors.Is(err, ErrBackend)는 항상 true, errors.Is(err, ErrAuth)는 401일 때만 true다.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("backend error: status=%d: %s", e.StatusCode, e.Message)
}

func (e *BackendError) Is(target error) bool {
	switch target {
	case ErrBackend:
		return true
	case ErrAuth:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// Message는 사용자에게 보여줄 backend 메시지를 꺼낸다. 없으면 빈 문자열.
func Message(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	return ""
}

// Transient는 재시도할 만한 에러인지 판단한다. 인증 실패와 파싱 실패는 재시도해도 결과가 같다.
func Transient(err error) bool {
	if err == nil || errors.Is(err, ErrAuth) || errors.Is(err, ErrParse) {
		return false
	}
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrBackend)
}

func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}
