package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-front/dto"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

// ExtractBearerToken extracts the Bearer token from the Authorization header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// AbortToLogin은 302 로 로그인 화면을 가리키고 요청을 중단한다.
// JSON 클라이언트를 위해 같은 정보를 바디에도 싣는다.
func AbortToLogin(c *gin.Context, loginPath string) {
	c.Header("Location", loginPath)
	c.AbortWithStatusJSON(http.StatusFound, dto.RedirectResponseDTO{
		Error:    "unauthenticated",
		Location: loginPath,
	})
}
