package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-front/api/auth"
	"blog-front/api/middleware"
	"blog-front/backend"
	"blog-front/dto"
	"blog-front/session"
)

// LoginHandler godoc
// @Summary      Admin login
// @Description  Exchanges the admin password for a session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequestDTO  true  "Password"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Router       /admin/login [post]
func LoginHandler(authn session.Authenticator, opts middleware.SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequestDTO
		_ = c.ShouldBindJSON(&req)

		mgr := session.NewManager(auth.NewCookieStore(c, opts.CookieName, opts.SecureCookie), authn)
		err := mgr.Login(c.Request.Context(), req.Password)
		if err == nil {
			c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "login successful"})
			return
		}

		var le *session.LoginError
		msg := err.Error()
		if errors.As(err, &le) {
			msg = le.Message
		}
		// 401 또는 success:false 는 비밀번호 거부로 본다
		status := http.StatusBadGateway
		var be *backend.BackendError
		switch {
		case errors.Is(err, session.ErrPasswordRequired):
			status = http.StatusBadRequest
		case errors.As(err, &be) && (be.StatusCode == http.StatusUnauthorized || be.StatusCode < 300):
			status = http.StatusUnauthorized
		}
		c.JSON(status, dto.ErrorResponseDTO{Error: msg})
	}
}

// LogoutHandler godoc
// @Summary      Admin logout
// @Tags         auth
// @Produce      json
// @Success      302  {object}  dto.RedirectResponseDTO
// @Router       /admin/logout [post]
func LogoutHandler(authn session.Authenticator, opts middleware.SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.Logout(c, authn, opts)
	}
}

// SessionHandler godoc
// @Summary      Session status
// @Description  Verifies the stored credential without clearing it or redirecting
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Router       /admin/session [get]
func SessionHandler(authn session.Authenticator, opts middleware.SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		mgr := session.NewManager(auth.NewCookieStore(c, opts.CookieName, opts.SecureCookie), authn)
		guard := session.NewGuard(mgr, session.NavigatorFunc(func(string) {}), opts.LoginPath)
		c.JSON(http.StatusOK, dto.SessionDTO{Authenticated: guard.IsAuthenticated(c.Request.Context())})
	}
}
