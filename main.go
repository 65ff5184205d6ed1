package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"blog-front/api/middleware"
	"blog-front/api/router"
	"blog-front/backend"
	"blog-front/backend/httpclient"
	"blog-front/config"
	"blog-front/internal/logger"
	"blog-front/services"
	"blog-front/source"
)

// @title           Blog Front API
// @version         1.0
// @description     Backend-for-frontend of the personal blog: post browsing and the admin console
// @BasePath        /api/v1
func main() {
	config.InitApp()
	config.InitLogger("blog-front")
	cfg := config.GetConfig()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := httpclient.New(httpclient.Config{Timeout: cfg.HTTP.Timeout})
	src, closeSource, err := source.FromConfig(ctx, cfg, httpClient)
	if err != nil {
		log.Fatal("failed to initialize post source:", err)
	}
	defer closeSource()

	// 인증과 관리자 API 는 source 설정과 관계없이 항상 backend 를 쓴다
	client := backend.New(cfg.APIURL(), httpClient)
	deps := router.Dependencies{
		Posts: services.NewPostService(src, cfg.Explorer.PageSize),
		Admin: services.NewAdminService(client),
		Auth:  client,
		Session: middleware.SessionOptions{
			CookieName:   cfg.Session.CookieName,
			LoginPath:    cfg.Session.LoginPath,
			SecureCookie: cfg.Environment == "production",
		},
	}
	if cfg.APIURL() != "" {
		deps.Health = client
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.Handler(router.New(deps), cfg.Server.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("server listening", logger.Fields{
			"addr":        cfg.Server.Addr,
			"environment": cfg.Environment,
			"source":      cfg.Source,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("server shutdown failed", logger.Fields{"error": err.Error()})
	}
}
