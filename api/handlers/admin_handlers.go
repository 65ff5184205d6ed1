package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-front/api/auth"
	"blog-front/api/middleware"
	"blog-front/backend"
	"blog-front/dto"
	"blog-front/services"
	"blog-front/session"
)

// respondAdminError: backend 가 토큰을 거부하면 세션을 끝내고 로그인으로 보낸다.
// 그 외에는 화면에 보여줄 메시지를 돌려준다.
func respondAdminError(c *gin.Context, err error, authn session.Authenticator, opts middleware.SessionOptions, fallback string) {
	switch {
	case errors.Is(err, backend.ErrAuth):
		middleware.Logout(c, authn, opts)
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: services.UserMessage(err, fallback)})
	default:
		c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: services.UserMessage(err, fallback)})
	}
}

// AdminListPostsHandler godoc
// @Summary      List posts (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.AdminPostListDTO
// @Failure      302  {object}  dto.RedirectResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /admin/posts [get]
func AdminListPostsHandler(svc *services.AdminService, authn session.Authenticator, opts middleware.SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListPosts(c.Request.Context(), c.GetString(auth.ContextKeyToken))
		if err != nil {
			respondAdminError(c, err, authn, opts, services.MsgLoadFailed)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// AdminCreatePostHandler godoc
// @Summary      Create post (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePostRequestDTO  true  "New post"
// @Success      201   {object}  dto.CreatePostResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      302   {object}  dto.RedirectResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Router       /admin/posts [post]
func AdminCreatePostHandler(svc *services.AdminService, authn session.Authenticator, opts middleware.SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreatePostRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "title, text and story are required"})
			return
		}

		out, err := svc.CreatePost(c.Request.Context(), c.GetString(auth.ContextKeyToken), req)
		if err != nil {
			respondAdminError(c, err, authn, opts, services.MsgCreateFailed)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// AdminDeletePostHandler godoc
// @Summary      Delete post (admin)
// @Tags         admin
// @Param        id   path  string  true  "Post ID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      302  {object}  dto.RedirectResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /admin/posts/{id} [delete]
func AdminDeletePostHandler(svc *services.AdminService, authn session.Authenticator, opts middleware.SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePost(c.Request.Context(), c.GetString(auth.ContextKeyToken), c.Param("id")); err != nil {
			respondAdminError(c, err, authn, opts, services.MsgDeleteFailed)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post deleted successfully"})
	}
}

// AdminPreviewHandler godoc
// @Summary      Markdown preview
// @Description  GitHub-flavoured markdown with hard line breaks, sanitized
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PreviewRequestDTO  true  "Markdown source"
// @Success      200   {object}  dto.PreviewResponseDTO
// @Router       /admin/preview [post]
func AdminPreviewHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PreviewRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid body"})
			return
		}
		c.JSON(http.StatusOK, svc.Preview(req.Markdown))
	}
}
