package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-front/api/handlers"
	"blog-front/api/middleware"
	_ "blog-front/docs"
	"blog-front/services"
	"blog-front/session"
)

// HealthChecker는 backend 상태 확인이다. *backend.Client가 구현한다.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type Dependencies struct {
	Posts   *services.PostService
	Admin   *services.AdminService
	Auth    session.Authenticator
	Session middleware.SessionOptions
	// nil 이면 /health 는 항상 ok
	Health HealthChecker
}

func New(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := deps.Health.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "backend": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/landing", handlers.LandingHandler(deps.Posts))
		api.GET("/posts", handlers.ListPostsHandler(deps.Posts))
		api.GET("/posts/:id", handlers.GetPostHandler(deps.Posts))
		api.GET("/stories/:story", handlers.StoryHandler(deps.Posts))
		api.GET("/filters/categories", handlers.CategoryFiltersHandler(deps.Posts))

		api.POST("/admin/login", handlers.LoginHandler(deps.Auth, deps.Session))
		api.POST("/admin/logout", handlers.LogoutHandler(deps.Auth, deps.Session))
		api.GET("/admin/session", handlers.SessionHandler(deps.Auth, deps.Session))

		admin := api.Group("/admin", middleware.SessionGuard(deps.Auth, deps.Session))
		admin.GET("/posts", handlers.AdminListPostsHandler(deps.Admin, deps.Auth, deps.Session))
		admin.POST("/posts", handlers.AdminCreatePostHandler(deps.Admin, deps.Auth, deps.Session))
		admin.DELETE("/posts/:id", handlers.AdminDeletePostHandler(deps.Admin, deps.Auth, deps.Session))
		admin.POST("/preview", handlers.AdminPreviewHandler(deps.Admin))
	}

	return r
}

// Handler는 engine 앞에 CORS 를 붙인다. 세션 쿠키 때문에 credentials 를 허용한다.
func Handler(engine http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	}).Handler(engine)
}
