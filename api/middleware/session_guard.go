package middleware

import (
	"github.com/gin-gonic/gin"

	"blog-front/api/auth"
	"blog-front/session"
)

// SessionOptions는 관리자 세션 쿠키와 로그인 경로 설정이다.
type SessionOptions struct {
	CookieName   string
	LoginPath    string
	SecureCookie bool
}

// redirector는 Guard 의 이동 요청을 기억해 두었다가 미들웨어가 응답으로 바꾼다.
type redirector struct {
	path string
}

func (r *redirector) Redirect(path string) { r.path = path }

// newGuard는 요청 하나에 묶인 Guard 를 만든다.
func newGuard(c *gin.Context, authn session.Authenticator, opts SessionOptions) (*session.Guard, *session.Manager, *redirector) {
	store := auth.NewCookieStore(c, opts.CookieName, opts.SecureCookie)
	mgr := session.NewManager(store, authn)
	nav := &redirector{}
	return session.NewGuard(mgr, nav, opts.LoginPath), mgr, nav
}

// SessionGuard 는 보호된 관리자 경로마다 자격 증명을 backend 에 재검증한다.
// 거부되면 쿠키를 지우고 로그인으로 302 응답한다.
func SessionGuard(authn session.Authenticator, opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		guard, mgr, nav := newGuard(c, authn, opts)
		if !guard.CanActivate(c.Request.Context()) {
			auth.AbortToLogin(c, nav.path)
			return
		}

		token, _ := mgr.GetToken()
		c.Set(auth.ContextKeyToken, token)
		c.Next()
	}
}

// Logout 은 현재 요청의 세션을 끝내고 로그인으로 보낸다.
func Logout(c *gin.Context, authn session.Authenticator, opts SessionOptions) {
	guard, _, nav := newGuard(c, authn, opts)
	guard.Logout()
	auth.AbortToLogin(c, nav.path)
}
