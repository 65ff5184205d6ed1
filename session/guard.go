package session

import (
	"context"
	"sync"

	"blog-front/internal/logger"
)

// State는 Guard 의 현재 상태다.
type State int

const (
	Unauthenticated State = iota
	Verifying
	Authenticated
	Rejected
)

func (s State) String() string {
	switch s {
	case Verifying:
		return "verifying"
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	default:
		return "unauthenticated"
	}
}

const DefaultLoginPath = "/admin/login"

// Navigator는 거부 시 로그인 화면으로 보내는 방법이다.
// 웹 서버는 302 redirect, CLI는 안내 메시지 출력으로 구현한다.
type Navigator interface {
	Redirect(path string)
}

// NavigatorFunc는 함수를 Navigator로 쓴다.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Redirect(path string) { f(path) }

// Guard는 보호된 화면에 들어가기 전마다 자격 증명을 backend 에 재검증한다.
// 이전 검증 결과를 캐시하지 않으며 검증 실패나 에러는 모두 거부로 처리한다.
type Guard struct {
	mgr       *Manager
	nav       Navigator
	loginPath string

	mu    sync.Mutex
	state State
}

func NewGuard(mgr *Manager, nav Navigator, loginPath string) *Guard {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	return &Guard{mgr: mgr, nav: nav, loginPath: loginPath}
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Guard) setState(s State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
}

// CanActivate는 진입 허용 여부를 돌려준다.
// 자격 증명이 없으면 바로 로그인으로 보내고, 검증에 실패하면 자격 증명을 지운 뒤 보낸다.
func (g *Guard) CanActivate(ctx context.Context) bool {
	token, err := g.mgr.GetToken()
	if err != nil || token == "" {
		if err != nil {
			logger.WarnWithFields("session credential unreadable", logger.Fields{"error": err.Error()})
		}
		g.setState(Unauthenticated)
		g.nav.Redirect(g.loginPath)
		return false
	}

	g.setState(Verifying)
	ok, err := g.mgr.auth.Verify(ctx, token)
	if err == nil && ok {
		g.setState(Authenticated)
		return true
	}

	fields := logger.Fields{"authenticated": ok}
	if err != nil {
		fields["error"] = err.Error()
	}
	logger.WarnWithFields("session verification rejected", fields)

	g.setState(Rejected)
	if err := g.mgr.Clear(); err != nil {
		logger.ErrorWithFields("session credential delete failed", logger.Fields{"error": err.Error()})
	}
	g.nav.Redirect(g.loginPath)
	g.setState(Unauthenticated)
	return false
}

// IsAuthenticated는 CanActivate 와 같은 검증을 하지만 이동도 삭제도 하지 않는다.
func (g *Guard) IsAuthenticated(ctx context.Context) bool {
	ok, err := g.mgr.Verify(ctx)
	if err != nil {
		logger.DebugWithFields("session check failed", logger.Fields{"error": err.Error()})
		return false
	}
	return ok
}

// Logout은 어느 상태에서든 자격 증명을 지우고 로그인으로 보낸다.
func (g *Guard) Logout() {
	if err := g.mgr.Clear(); err != nil {
		logger.ErrorWithFields("session credential delete failed", logger.Fields{"error": err.Error()})
	}
	g.setState(Unauthenticated)
	g.nav.Redirect(g.loginPath)
}
