package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		err    error
	}{
		{header: "", err: ErrMissingHeader},
		{header: "Basic abc", err: ErrInvalidFormat},
		{header: "Bearer   ", err: ErrEmptyToken},
		{header: "bearer tok", want: "tok"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		c, _ := newContext(req)

		got, err := ExtractBearerToken(c)
		assert.Equal(t, tc.want, got)
		assert.ErrorIs(t, err, tc.err)
	}
}

func TestCookieStore(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "admin-token", Value: "from-cookie"})
	c, w := newContext(req)
	s := NewCookieStore(c, "admin-token", false)

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", token)

	require.NoError(t, s.Save("fresh"))
	token, _ = s.Load()
	assert.Equal(t, "fresh", token)

	require.NoError(t, s.Delete())
	token, _ = s.Load()
	assert.Empty(t, token)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "fresh", cookies[0].Value)
	assert.Equal(t, -1, cookies[1].MaxAge)
}

func TestCookieStoreFallsBackToBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer api-token")
	c, _ := newContext(req)

	token, err := NewCookieStore(c, "", false).Load()
	require.NoError(t, err)
	assert.Equal(t, "api-token", token)
}

func TestAbortToLogin(t *testing.T) {
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/api/v1/admin/posts", nil))
	AbortToLogin(c, "/admin/login")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
	assert.JSONEq(t, `{"error":"unauthenticated","location":"/admin/login"}`, w.Body.String())
}
