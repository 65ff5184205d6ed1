// Package session은 관리자 자격 증명의 저장/검증과 보호된 화면 진입을 관리한다.
package session

import (
	"context"
	"errors"
	"strings"

	"blog-front/backend"
	"blog-front/internal/logger"
)

// Authenticator는 backend 의 로그인/토큰 검증 엔드포인트다. *backend.Client가 구현한다.
type Authenticator interface {
	Login(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, token string) (bool, error)
}

const (
	msgPasswordRequired = "Password is required"
	msgInvalidPassword  = "Invalid password"
	msgLoginRejected    = "Login failed"
	msgLoginFailed      = "Login failed. Please try again."
)

// ErrPasswordRequired는 빈 비밀번호로 로그인하려 할 때 반환된다.
var ErrPasswordRequired = &LoginError{Message: msgPasswordRequired}

// LoginError는 로그인 화면에 그대로 보여줄 메시지를 담는다.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string { return e.Message }
func (e *LoginError) Unwrap() error { return e.Err }

// Manager는 자격 증명에 접근하는 유일한 경로다.
type Manager struct {
	store Store
	auth  Authenticator
}

func NewManager(store Store, auth Authenticator) *Manager {
	return &Manager{store: store, auth: auth}
}

func (m *Manager) GetToken() (string, error) {
	return m.store.Load()
}

func (m *Manager) SetToken(token string) error {
	return m.store.Save(token)
}

func (m *Manager) Clear() error {
	return m.store.Delete()
}

// Verify는 저장된 토큰을 backend 에 확인한다. 토큰이 없으면 (false, nil).
func (m *Manager) Verify(ctx context.Context) (bool, error) {
	token, err := m.GetToken()
	if err != nil || token == "" {
		return false, err
	}
	return m.auth.Verify(ctx, token)
}

// Login은 비밀번호로 토큰을 받아 저장한다. 실패 시 *LoginError를 반환한다.
func (m *Manager) Login(ctx context.Context, password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}

	token, err := m.auth.Login(ctx, password)
	if err != nil {
		logger.WarnWithFields("admin login failed", logger.Fields{"error": err.Error()})
		return loginError(err)
	}
	if err := m.SetToken(token); err != nil {
		return &LoginError{Message: msgLoginFailed, Err: err}
	}
	logger.Log.Info("admin login succeeded")
	return nil
}

func loginError(err error) *LoginError {
	var be *backend.BackendError
	switch {
	case errors.Is(err, backend.ErrAuth):
		return &LoginError{Message: msgInvalidPassword, Err: err}
	case errors.As(err, &be) && be.StatusCode < 300:
		// success:false 응답
		msg := be.Message
		if msg == "" {
			msg = msgLoginRejected
		}
		return &LoginError{Message: msg, Err: err}
	default:
		return &LoginError{Message: msgLoginFailed, Err: err}
	}
}
