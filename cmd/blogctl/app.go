package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"blog-front/backend"
	"blog-front/backend/httpclient"
	"blog-front/config"
	"blog-front/internal/logger"
	"blog-front/services"
	"blog-front/session"
	"blog-front/source"
)

var errSignedOut = errors.New("not signed in")

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc3545"))
)

// App은 blogctl 명령들이 공유하는 서비스와 세션 저장소다.
type App struct {
	out io.Writer

	posts     *services.PostService
	admin     *services.AdminService
	authn     session.Authenticator
	store     session.Store
	loginPath string

	closeFn func()
}

// init은 config.yaml 을 읽어 서비스를 조립한다. 이미 조립되어 있으면 아무것도 하지 않는다.
func (a *App) init(ctx context.Context, logLevel string) error {
	if a.posts != nil {
		return nil
	}

	cfg, err := config.Load(config.GetBasePath())
	if err != nil {
		return err
	}
	logger.Init(logLevel, "blogctl")

	httpClient := httpclient.New(httpclient.Config{Timeout: cfg.HTTP.Timeout})
	src, closeFn, err := source.FromConfig(ctx, *cfg, httpClient)
	if err != nil {
		return err
	}

	credPath := cfg.Session.CredentialsFile
	if credPath == "" {
		if credPath, err = session.DefaultCredentialsPath(); err != nil {
			closeFn()
			return err
		}
	}

	client := backend.New(cfg.APIURL(), httpClient)
	a.posts = services.NewPostService(src, cfg.Explorer.PageSize)
	a.admin = services.NewAdminService(client)
	a.authn = client
	a.store = session.NewFileStore(credPath)
	a.loginPath = cfg.Session.LoginPath
	a.closeFn = closeFn
	return nil
}

func (a *App) close() {
	if a.closeFn != nil {
		a.closeFn()
		a.closeFn = nil
	}
}

func (a *App) manager() *session.Manager {
	return session.NewManager(a.store, a.authn)
}

// guard는 로그인 화면 대신 안내 문구를 출력하는 Guard 를 만든다.
func (a *App) guard() *session.Guard {
	return session.NewGuard(a.manager(), session.NavigatorFunc(func(path string) {
		fmt.Fprintf(a.out, "Sign in required (%s). Run `blogctl login` first.\n", path)
	}), a.loginPath)
}

// requireSession은 관리자 명령 전에 매번 backend 로 토큰을 재검증한다.
func (a *App) requireSession(ctx context.Context) (string, error) {
	if !a.guard().CanActivate(ctx) {
		return "", errSignedOut
	}
	return a.manager().GetToken()
}

// adminFailed는 관리자 명령 실패를 출력한다. 401 이면 세션을 끝낸다.
func (a *App) adminFailed(err error, fallback string) error {
	if errors.Is(err, backend.ErrAuth) {
		a.guard().Logout()
		return errSignedOut
	}
	a.printError(services.UserMessage(err, fallback))
	return err
}

func (a *App) printError(msg string) {
	fmt.Fprintln(a.out, errorStyle.Render(msg))
}
