package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-front/backend"
	"blog-front/dto"
	"blog-front/models"
)

type fakeAdmin struct {
	posts   []models.Post
	listErr error

	created   models.NewPostInput
	createID  string
	createErr error

	deleted   string
	deleteErr error
}

func (f *fakeAdmin) ListAdmin(ctx context.Context, token string) ([]models.Post, error) {
	return f.posts, f.listErr
}

func (f *fakeAdmin) CreatePost(ctx context.Context, token string, in models.NewPostInput) (string, error) {
	f.created = in
	return f.createID, f.createErr
}

func (f *fakeAdmin) DeletePost(ctx context.Context, token, id string) error {
	f.deleted = id
	return f.deleteErr
}

func TestStoryColor(t *testing.T) {
	assert.Equal(t, "#007bff", StoryColor("Tech"))
	assert.Equal(t, "#28a745", StoryColor("personal"))
	assert.Equal(t, "#ffc107", StoryColor("TUTORIAL"))
	assert.Equal(t, "#dc3545", StoryColor("review"))
	assert.Equal(t, "#17a2b8", StoryColor("news"))
	assert.Equal(t, "#6c757d", StoryColor("Cooking"))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Jul 29, 2025", DisplayDate("2025-07-29"))
	assert.Equal(t, "Aug 1, 2025", DisplayDate("2025-08-01T09:00:00Z"))
	assert.Equal(t, "someday", DisplayDate("someday"))
}

func TestListPosts(t *testing.T) {
	long := strings.Repeat("a", 120)
	svc := NewAdminService(&fakeAdmin{posts: []models.Post{{ID: "1", Title: "T", Text: long, Story: "tech", Date: "2025-07-29"}}})

	out, err := svc.ListPosts(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	item := out.Items[0]
	assert.Equal(t, strings.Repeat("a", 100)+"...", item.Excerpt)
	assert.Equal(t, "#007bff", item.StoryColor)
	assert.Equal(t, "Jul 29, 2025", item.DisplayDate)
	assert.NotNil(t, item.Tags)
}

func TestListPostsErrors(t *testing.T) {
	svc := NewAdminService(&fakeAdmin{listErr: &backend.BackendError{StatusCode: http.StatusInternalServerError}})
	_, err := svc.ListPosts(context.Background(), "tok")
	assert.Equal(t, MsgLoadFailed, UserMessage(err, ""))

	svc = NewAdminService(&fakeAdmin{listErr: &backend.BackendError{StatusCode: http.StatusOK}})
	_, err = svc.ListPosts(context.Background(), "tok")
	assert.Equal(t, MsgAdminListFailed, UserMessage(err, ""))

	svc = NewAdminService(&fakeAdmin{listErr: &backend.BackendError{StatusCode: http.StatusUnauthorized}})
	_, err = svc.ListPosts(context.Background(), "tok")
	assert.ErrorIs(t, err, backend.ErrAuth)
}

func TestCreatePost(t *testing.T) {
	fake := &fakeAdmin{createID: "new-1"}
	svc := NewAdminService(fake)
	svc.now = func() time.Time { return time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC) }

	out, err := svc.CreatePost(context.Background(), "tok", dto.CreatePostRequestDTO{
		Title: "  Title ",
		Text:  "# body",
		Story: "tech",
		Tags:  []string{" go ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "new-1", out.PostID)
	assert.Equal(t, "Title", fake.created.Title)
	assert.Equal(t, []string{"go"}, fake.created.Tags)
	assert.Equal(t, "2025-08-02", fake.created.Date)
}

func TestCreatePostValidation(t *testing.T) {
	fake := &fakeAdmin{}
	_, err := NewAdminService(fake).CreatePost(context.Background(), "tok", dto.CreatePostRequestDTO{Title: "T", Story: "tech"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "text is required", UserMessage(err, ""))
	assert.Empty(t, fake.created.Title, "backend not called")
}

func TestCreatePostBackendMessages(t *testing.T) {
	req := dto.CreatePostRequestDTO{Title: "T", Text: "x", Story: "tech"}

	_, err := NewAdminService(&fakeAdmin{createErr: &backend.BackendError{StatusCode: 200, Message: "Title already exists"}}).CreatePost(context.Background(), "tok", req)
	assert.Equal(t, "Title already exists", UserMessage(err, ""))

	_, err = NewAdminService(&fakeAdmin{createErr: fmt.Errorf("%w: refused", backend.ErrNetwork)}).CreatePost(context.Background(), "tok", req)
	assert.Equal(t, MsgCreateFailed, UserMessage(err, ""))
}

func TestDeletePost(t *testing.T) {
	fake := &fakeAdmin{}
	require.NoError(t, NewAdminService(fake).DeletePost(context.Background(), "tok", "abc"))
	assert.Equal(t, "abc", fake.deleted)

	err := NewAdminService(&fakeAdmin{deleteErr: &backend.BackendError{StatusCode: 200}}).DeletePost(context.Background(), "tok", "abc")
	assert.Equal(t, MsgDeleteRejected, UserMessage(err, ""))

	err = NewAdminService(&fakeAdmin{}).DeletePost(context.Background(), "tok", " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPreview(t *testing.T) {
	out := NewAdminService(&fakeAdmin{}).Preview("**bold**")
	assert.Contains(t, out.HTML, "<strong>bold</strong>")
}
