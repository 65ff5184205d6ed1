package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-front/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", nil)
}

func TestFetchAll(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/manage/all", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"blogs":[{"id":"1","title":"Hello","text":"t","story":"Cooking","date":"2025-07-29"}]}`))
	})

	posts, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
	assert.NotNil(t, posts[0].Files)
}

func TestDecodeListingRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"bare array":     `[{"id":"1","title":"a"}]`,
		"missing blogs":  `{"posts":[]}`,
		"null blogs":     `{"blogs":null}`,
		"object blogs":   `{"blogs":{"id":"1"}}`,
		"empty id":       `{"blogs":[{"id":"","title":"a"}]}`,
		"blank title":    `{"blogs":[{"id":"1","title":"  "}]}`,
		"duplicate id":   `{"blogs":[{"id":"1","title":"a"},{"id":"1","title":"b"}]}`,
		"wrong type":     `{"blogs":[{"id":1,"title":"a"}]}`,
		"not json":       `<html>`,
		"legacy _id key": `{"blogs":[{"_id":"1","title":"a"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeListing([]byte(body))
			assert.ErrorIs(t, err, ErrParse)
		})
	}

	posts, err := DecodeListing([]byte(`{"blogs":[]}`))
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFetchAllErrorTaxonomy(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"db down"}`))
	})
	_, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrBackend)
	assert.NotErrorIs(t, err, ErrAuth)
	assert.Equal(t, "db down", Message(err))
	assert.True(t, Transient(err))

	c = New("http://127.0.0.1:1", nil)
	_, err = c.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
	assert.True(t, Transient(err))
}

func TestAdminCallsSendBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"blogs":[{"id":"a","title":"A"}]}`))
	})

	posts, err := c.ListAdmin(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestAdminUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.ListAdmin(context.Background(), "expired")
	assert.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, ErrBackend)
	assert.False(t, Transient(err))

	var be *BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusUnauthorized, be.StatusCode)
}

func TestCreatePost(t *testing.T) {
	var got models.NewPostInput
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/blogs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		if got.Title == "dup" {
			w.Write([]byte(`{"success":false,"error":"Title already exists"}`))
			return
		}
		w.Write([]byte(`{"success":true,"id":"new-1"}`))
	})

	id, err := c.CreatePost(context.Background(), "tok", models.NewPostInput{Title: "T", Text: "body", Story: "tech", Tags: []string{"go"}})
	require.NoError(t, err)
	assert.Equal(t, "new-1", id)
	assert.Equal(t, []string{"go"}, got.Tags)

	_, err = c.CreatePost(context.Background(), "tok", models.NewPostInput{Title: "dup", Text: "x", Story: "tech"})
	assert.ErrorIs(t, err, ErrBackend)
	assert.Equal(t, "Title already exists", Message(err))
}

func TestDeletePost(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"success":true}`))
	})

	require.NoError(t, c.DeletePost(context.Background(), "tok", "abc 1"))
	assert.Equal(t, "/admin/blogs/abc%201", gotPath)

	assert.Error(t, c.DeletePost(context.Background(), "tok", " "))
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		switch req.Password {
		case "secret":
			w.Write([]byte(`{"success":true,"token":"tok-1"}`))
		case "broken":
			w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":"Invalid password"}`))
		}
	})

	token, err := c.Login(context.Background(), "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	_, err = c.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrAuth)

	_, err = c.Login(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrParse)
}

func TestVerify(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		switch req.Token {
		case "good":
			w.Write([]byte(`{"success":true,"authenticated":true}`))
		case "garbage":
			w.Write([]byte(`not json`))
		default:
			w.Write([]byte(`{"success":false,"authenticated":false}`))
		}
	})

	ok, err := c.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Verify(context.Background(), "stale")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrParse)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, c.Health(context.Background()))
}
