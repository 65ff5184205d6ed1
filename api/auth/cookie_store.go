package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-front/session"
)

// ContextKeyToken은 SessionGuard가 검증된 토큰을 gin 컨텍스트에 저장하는 키다.
const ContextKeyToken = "admin_token"

// CookieStore는 웹 서버용 session.Store 다. 자격 증명은 HttpOnly 쿠키에 둔다.
// 쿠키가 없으면 Authorization: Bearer 헤더를 읽어 API 클라이언트도 허용한다.
type CookieStore struct {
	c      *gin.Context
	name   string
	secure bool

	// 같은 요청 안에서 Save/Delete 한 값을 Load가 바로 보도록 기억한다.
	written bool
	value   string
}

var _ session.Store = (*CookieStore)(nil)

func NewCookieStore(c *gin.Context, name string, secure bool) *CookieStore {
	if name == "" {
		name = session.CredentialKey
	}
	return &CookieStore{c: c, name: name, secure: secure}
}

func (s *CookieStore) Load() (string, error) {
	if s.written {
		return s.value, nil
	}
	if v, err := s.c.Cookie(s.name); err == nil && v != "" {
		return v, nil
	}
	if token, err := ExtractBearerToken(s.c); err == nil {
		return token, nil
	}
	return "", nil
}

func (s *CookieStore) Save(token string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(s.name, token, 0, "/", "", s.secure, true)
	s.written, s.value = true, token
	return nil
}

func (s *CookieStore) Delete() error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(s.name, "", -1, "/", "", s.secure, true)
	s.written, s.value = true, ""
	return nil
}
