package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-front/backend"
	"blog-front/models"
	"blog-front/services"
	"blog-front/session"
	"blog-front/source"
)

func testPosts() []models.Post {
	return []models.Post{
		{ID: "c20250729", Title: "Homemade Pesto", Text: "Basil from the balcony", Story: "Cooking", Date: "2025-07-29"},
		{ID: "p20250801", Title: "Debugging a Memory Leak", Text: "Profiling a Rust service", Story: "Programming", Date: "2025-08-01"},
		{ID: "p20250715", Title: "Go Generics", Text: "Type parameters", Story: "Programming", Date: "2025-07-15"},
		{ID: "g20250726", Title: "Monstera Deliciosa", Text: "First fenestrations", Story: "Planting", Date: "2025-07-26"},
	}
}

type fakeAuthn struct {
	token    string
	loginErr error
	valid    map[string]bool
}

func (f *fakeAuthn) Login(ctx context.Context, password string) (string, error) {
	return f.token, f.loginErr
}

func (f *fakeAuthn) Verify(ctx context.Context, token string) (bool, error) {
	return f.valid[token], nil
}

type fakeAdmin struct {
	err       error
	created   models.NewPostInput
	deletedID string
}

func (f *fakeAdmin) ListAdmin(ctx context.Context, token string) ([]models.Post, error) {
	return testPosts(), f.err
}

func (f *fakeAdmin) CreatePost(ctx context.Context, token string, in models.NewPostInput) (string, error) {
	f.created = in
	return "new-id", f.err
}

func (f *fakeAdmin) DeletePost(ctx context.Context, token, id string) error {
	f.deletedID = id
	return f.err
}

func newTestApp(src source.PostSource, admin *fakeAdmin, authn *fakeAuthn, store session.Store) *App {
	return &App{
		posts:     services.NewPostService(src, 2),
		admin:     services.NewAdminService(admin),
		authn:     authn,
		store:     store,
		loginPath: session.DefaultLoginPath,
	}
}

func staticSource() source.PostSource {
	return source.Func(func(ctx context.Context) ([]models.Post, error) { return testPosts(), nil })
}

func run(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPostsCommand(t *testing.T) {
	app := newTestApp(staticSource(), &fakeAdmin{}, &fakeAuthn{}, session.NewMemoryStore(""))

	out, err := run(t, app, "", "posts", "--category", "Programming")
	require.NoError(t, err)
	assert.Contains(t, out, "Debugging a Memory Leak")
	assert.Contains(t, out, "Go Generics")
	assert.NotContains(t, out, "Homemade Pesto")
	assert.Contains(t, out, "Page 1 of 1 (2 posts)")

	out, err = run(t, app, "", "posts", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Monstera Deliciosa")
	assert.Contains(t, out, "Page 2 of 2 (4 posts)")
}

func TestPostsCommandLoadFailure(t *testing.T) {
	src := source.Func(func(ctx context.Context) ([]models.Post, error) { return nil, backend.ErrNetwork })
	app := newTestApp(src, &fakeAdmin{}, &fakeAuthn{}, session.NewMemoryStore(""))

	out, err := run(t, app, "", "posts")
	require.Error(t, err)
	assert.Contains(t, out, services.MsgLoadFailed)
}

func TestHomeAndStoryCommands(t *testing.T) {
	app := newTestApp(staticSource(), &fakeAdmin{}, &fakeAuthn{}, session.NewMemoryStore(""))

	out, err := run(t, app, "", "home")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Debugging a Memory Leak"), strings.Index(out, "Homemade Pesto"))

	out, err = run(t, app, "", "story", "programming")
	require.NoError(t, err)
	assert.Contains(t, out, "Programming")
	assert.Less(t, strings.Index(out, "Debugging a Memory Leak"), strings.Index(out, "Go Generics"))
}

func TestShowCommand(t *testing.T) {
	app := newTestApp(staticSource(), &fakeAdmin{}, &fakeAuthn{}, session.NewMemoryStore(""))

	out, err := run(t, app, "", "show", "p20250715")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Generics")
	assert.Contains(t, out, "Related posts")
	assert.Contains(t, out, "p20250801")

	out, err = run(t, app, "", "show", "missing")
	require.ErrorIs(t, err, services.ErrPostNotFound)
	assert.Contains(t, out, "Post not found.")
}

func TestLoginCommand(t *testing.T) {
	store := session.NewMemoryStore("")
	app := newTestApp(staticSource(), &fakeAdmin{}, &fakeAuthn{token: "tok"}, store)

	out, err := run(t, app, "", "login", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in.")
	token, _ := store.Load()
	assert.Equal(t, "tok", token)
}

func TestLoginCommandPromptsForPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	t.Cleanup(func() { readPassword = orig })

	store := session.NewMemoryStore("")
	app := newTestApp(staticSource(), &fakeAdmin{}, &fakeAuthn{token: "tok"}, store)

	out, err := run(t, app, "", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Password: ")
	token, _ := store.Load()
	assert.Equal(t, "tok", token)
}

func TestLoginCommandRejected(t *testing.T) {
	store := session.NewMemoryStore("")
	authn := &fakeAuthn{loginErr: &backend.BackendError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}}
	app := newTestApp(staticSource(), &fakeAdmin{}, authn, store)

	out, err := run(t, app, "", "login", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, out, "Invalid password")
	token, _ := store.Load()
	assert.Empty(t, token)
}

func TestStatusAndLogout(t *testing.T) {
	store := session.NewMemoryStore("good")
	app := newTestApp(staticSource(), &fakeAdmin{}, &fakeAuthn{valid: map[string]bool{"good": true}}, store)

	out, err := run(t, app, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in.")

	out, err = run(t, app, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "blogctl login")
	token, _ := store.Load()
	assert.Empty(t, token)

	out, err = run(t, app, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out.")
}

func TestAdminCommandsRequireSession(t *testing.T) {
	admin := &fakeAdmin{}
	store := session.NewMemoryStore("stale")
	app := newTestApp(staticSource(), admin, &fakeAuthn{valid: map[string]bool{}}, store)

	out, err := run(t, app, "", "admin", "delete", "p20250801")
	require.ErrorIs(t, err, errSignedOut)
	assert.Contains(t, out, "Sign in required (/admin/login)")
	assert.Empty(t, admin.deletedID)
	token, _ := store.Load()
	assert.Empty(t, token, "rejected credential is cleared")
}

func TestAdminListCommand(t *testing.T) {
	app := newTestApp(staticSource(), &fakeAdmin{}, &fakeAuthn{valid: map[string]bool{"good": true}}, session.NewMemoryStore("good"))

	out, err := run(t, app, "", "admin", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "4 posts")
	assert.Contains(t, out, "Jul 29, 2025")
}

func TestAdminCreateCommandReadsStdin(t *testing.T) {
	admin := &fakeAdmin{}
	app := newTestApp(staticSource(), admin, &fakeAuthn{valid: map[string]bool{"good": true}}, session.NewMemoryStore("good"))

	out, err := run(t, app, "# Body\n\ntext", "admin", "create", "--title", " New ", "--story", "Cooking", "--tags", "a,b", "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Created new-id")
	assert.Equal(t, "New", admin.created.Title)
	assert.Equal(t, "# Body\n\ntext", admin.created.Text)
	assert.Equal(t, []string{"a", "b"}, admin.created.Tags)
}

func TestAdminCreateCommandInvalidInput(t *testing.T) {
	admin := &fakeAdmin{}
	app := newTestApp(staticSource(), admin, &fakeAuthn{valid: map[string]bool{"good": true}}, session.NewMemoryStore("good"))

	_, err := run(t, app, "", "admin", "create", "--title", "New", "--story", "Cooking")
	require.ErrorIs(t, err, services.ErrInvalidInput)
	assert.Empty(t, admin.created.Title)
}

func TestAdminCommandLogsOutOnBackend401(t *testing.T) {
	admin := &fakeAdmin{err: &backend.BackendError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}}
	store := session.NewMemoryStore("good")
	app := newTestApp(staticSource(), admin, &fakeAuthn{valid: map[string]bool{"good": true}}, store)

	out, err := run(t, app, "", "admin", "delete", "p20250801")
	require.ErrorIs(t, err, errSignedOut)
	assert.Contains(t, out, "blogctl login")
	token, _ := store.Load()
	assert.Empty(t, token)
}

func TestAdminDeleteCommandBackendFailure(t *testing.T) {
	admin := &fakeAdmin{err: fmt.Errorf("%w: connection refused", backend.ErrNetwork)}
	store := session.NewMemoryStore("good")
	app := newTestApp(staticSource(), admin, &fakeAuthn{valid: map[string]bool{"good": true}}, store)

	out, err := run(t, app, "", "admin", "delete", "p20250801")
	require.Error(t, err)
	assert.Contains(t, out, services.MsgDeleteFailed)
	token, _ := store.Load()
	assert.Equal(t, "good", token, "network failures keep the session")
}

func TestPreviewCommand(t *testing.T) {
	app := newTestApp(staticSource(), &fakeAdmin{}, &fakeAuthn{}, session.NewMemoryStore(""))

	path := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(path, []byte("**bold**"), 0o600))

	out, err := run(t, app, "", "preview", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>bold</strong>")

	out, err = run(t, app, "line one\nline two", "preview")
	require.NoError(t, err)
	assert.Contains(t, out, "<br")

	out, err = run(t, app, "", "preview", "--template")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to the Blog Editor!")
}

func TestPreviewCommandMissingFile(t *testing.T) {
	app := newTestApp(staticSource(), &fakeAdmin{}, &fakeAuthn{}, session.NewMemoryStore(""))

	_, err := run(t, app, "", "preview", filepath.Join(t.TempDir(), "missing.md"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
