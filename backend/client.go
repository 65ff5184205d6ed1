// Package backend는 블로그 backend HTTP API를 호출하는 얇은 클라이언트다.
//
// - 응답 형태 검증은 이 경계에서 한 번만 한다. 호출자는 정규화된 models.Post만 본다.
// - 실패는 ErrNetwork / *BackendError(ErrBackend, ErrAuth) / ErrParse 로 구분된다.
//
// baseURL 예: http://localhost:34000
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"blog-front/backend/httpclient"
	"blog-front/models"
)

// 응답 바디 상한. 전체 목록 응답도 이 안에 들어온다.
const maxBodyBytes = 8 << 20

type Client struct {
	base *httpclient.BaseClient
}

func New(baseURL string, httpClient *http.Client) *Client {
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, strings.TrimRight(baseURL, "/"))}
}

func (c *Client) BaseURL() string { return c.base.BaseURL }

// -------------------- wire types --------------------

type adminListResponse struct {
	Success bool            `json:"success"`
	Blogs   json.RawMessage `json:"blogs"`
	Error   string          `json:"error,omitempty"`
}

type createResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Success       bool `json:"success"`
	Authenticated bool `json:"authenticated"`
}

// 실패 응답 바디에서 메시지를 꺼낼 때 쓰는 형태.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// -------------------- Posts --------------------

// FetchAll은 GET /manage/all 로 전체 포스트 목록을 가져온다. 순서는 보장하지 않는다.
func (c *Client) FetchAll(ctx context.Context) ([]models.Post, error) {
	body, err := c.call(ctx, http.MethodGet, "/manage/all", "", nil)
	if err != nil {
		return nil, err
	}
	return DecodeListing(body)
}

// ListAdmin은 GET /admin/blogs 를 호출한다.
func (c *Client) ListAdmin(ctx context.Context, token string) ([]models.Post, error) {
	body, err := c.call(ctx, http.MethodGet, "/admin/blogs", token, nil)
	if err != nil {
		return nil, err
	}
	var out adminListResponse
	if err := decode(body, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &BackendError{StatusCode: http.StatusOK, Message: out.Error}
	}
	return decodePosts(out.Blogs)
}

// CreatePost는 POST /admin/blogs 로 새 포스트를 만들고 backend가 부여한 id를 반환한다.
// id를 돌려주지 않는 backend 버전도 있어 빈 문자열일 수 있다.
func (c *Client) CreatePost(ctx context.Context, token string, in models.NewPostInput) (string, error) {
	body, err := c.call(ctx, http.MethodPost, "/admin/blogs", token, in)
	if err != nil {
		return "", err
	}
	var out createResponse
	if err := decode(body, &out); err != nil {
		return "", err
	}
	if !out.Success {
		return "", &BackendError{StatusCode: http.StatusOK, Message: out.Error}
	}
	return out.ID, nil
}

// DeletePost는 DELETE /admin/blogs/{id} 를 호출한다.
func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" || strings.Contains(id, "/") {
		return fmt.Errorf("delete post: invalid id %q", id)
	}
	body, err := c.call(ctx, http.MethodDelete, path.Join("/admin/blogs", id), token, nil)
	if err != nil {
		return err
	}
	var out statusResponse
	if err := decode(body, &out); err != nil {
		return err
	}
	if !out.Success {
		return &BackendError{StatusCode: http.StatusOK, Message: out.Error}
	}
	return nil
}

// -------------------- Auth --------------------

// Login은 POST /admin/login 으로 비밀번호를 보내 토큰을 받는다.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	body, err := c.call(ctx, http.MethodPost, "/admin/login", "", loginRequest{Password: password})
	if err != nil {
		return "", err
	}
	var out loginResponse
	if err := decode(body, &out); err != nil {
		return "", err
	}
	if !out.Success {
		return "", &BackendError{StatusCode: http.StatusOK, Message: out.Error}
	}
	if out.Token == "" {
		return "", parseErrorf("login succeeded without a token")
	}
	return out.Token, nil
}

// Verify는 POST /admin/verify 로 토큰 유효성을 확인한다.
// success && authenticated 일 때만 true. 호출 자체의 실패는 에러로 돌려준다.
func (c *Client) Verify(ctx context.Context, token string) (bool, error) {
	body, err := c.call(ctx, http.MethodPost, "/admin/verify", "", verifyRequest{Token: token})
	if err != nil {
		return false, err
	}
	var out verifyResponse
	if err := decode(body, &out); err != nil {
		return false, err
	}
	return out.Success && out.Authenticated, nil
}

// Health는 GET /health 가 2xx 를 돌려주는지만 본다.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.call(ctx, http.MethodGet, "/health", "", nil)
	return err
}

// -------------------- transport --------------------

// call은 요청을 보내고 2xx 응답 바디를 돌려준다. 그 밖의 상태는 *BackendError가 된다.
func (c *Client) call(ctx context.Context, method, relPath, token string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := c.base.NewRequest(ctx, method, relPath, nil, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, relPath, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: reading body: %v", ErrNetwork, method, relPath, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}
	return body, nil
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return parseErrorf("%v", err)
	}
	return nil
}

func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			return eb.Error
		}
		return eb.Message
	}
	return ""
}
