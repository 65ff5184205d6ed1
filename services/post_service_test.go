package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-front/backend"
	"blog-front/models"
	"blog-front/source"
)

func fixedSource(posts []models.Post) source.PostSource {
	return source.Func(func(ctx context.Context) ([]models.Post, error) {
		return posts, nil
	})
}

func samplePosts() []models.Post {
	return []models.Post{
		{ID: "c1", Title: "Homemade Pesto", Text: "Basil **from** the balcony", Story: "Cooking", Date: "2025-07-29"},
		{ID: "p1", Title: "Memory Leak", Text: "Profiling a service", Story: "Programming", Date: "2025-08-01"},
		{ID: "g1", Title: "Monstera", Text: "First fenestrations", Story: "Planting", Date: "2025-07-26"},
		{ID: "c2", Title: "Hot Sauce", Text: "Fermented chillies", Story: "Cooking", Date: "2025-07-18"},
		{ID: "c3", Title: "Focaccia", Text: "Rosemary", Story: "Cooking", Date: "2025-06-28"},
		{ID: "c4", Title: "Ramen", Text: "Broth", Story: "Cooking", Date: "2025-06-01"},
		{ID: "p2", Title: "Tiny CLI", Text: "clap", Story: "Programming", Date: "2025-07-23"},
	}
}

func TestExplore(t *testing.T) {
	svc := NewPostService(fixedSource(samplePosts()), 2)

	out, err := svc.Explore(context.Background(), ExploreInput{Category: "Cooking", Sort: "title"})
	require.NoError(t, err)

	assert.Equal(t, 4, out.Posts.Total)
	assert.Equal(t, 2, out.Posts.TotalPages)
	require.Len(t, out.Posts.Data, 2)
	assert.Equal(t, "Focaccia", out.Posts.Data[0].Title)
	assert.Equal(t, "Homemade Pesto", out.Posts.Data[1].Title)
	assert.Equal(t, "title", out.Query.SortBy)
	assert.Len(t, out.Categories, 3)

	out, err = svc.Explore(context.Background(), ExploreInput{Search: "nothing matches"})
	require.NoError(t, err)
	assert.Empty(t, out.Posts.Data)
	assert.Equal(t, 1, out.Posts.TotalPages)
}

func TestLanding(t *testing.T) {
	svc := NewPostService(fixedSource(samplePosts()), 10)

	out, err := svc.Landing(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out.Featured)
	assert.Equal(t, "p1", out.Featured.ID)
	require.Len(t, out.Recent, 5)
	assert.Equal(t, []string{"c1", "g1", "p2", "c2", "c3"}, []string{out.Recent[0].ID, out.Recent[1].ID, out.Recent[2].ID, out.Recent[3].ID, out.Recent[4].ID})

	empty, err := NewPostService(fixedSource(nil), 10).Landing(context.Background())
	require.NoError(t, err)
	assert.Nil(t, empty.Featured)
	assert.Empty(t, empty.Recent)
}

func TestDetail(t *testing.T) {
	svc := NewPostService(fixedSource(samplePosts()), 10)

	out, err := svc.Detail(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "Homemade Pesto | Blog", out.SEO.Title)
	assert.Equal(t, "Basil from the balcony", out.SEO.Description)
	assert.Contains(t, out.HTML, "<strong>from</strong>")
	assert.Equal(t, "Basil from the balcony…", out.ShareText)

	require.Len(t, out.Related, 3)
	for _, r := range out.Related {
		assert.Equal(t, "Cooking", r.Story)
		assert.NotEqual(t, "c1", r.ID)
	}

	_, err = svc.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDetailDescriptionFallsBackToTitle(t *testing.T) {
	svc := NewPostService(fixedSource([]models.Post{{ID: "x", Title: "Only a title", Story: "News"}}), 10)

	out, err := svc.Detail(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "Only a title", out.SEO.Description)
	assert.Empty(t, out.Related)
}

func TestStoryIsCaseInsensitive(t *testing.T) {
	svc := NewPostService(fixedSource(samplePosts()), 10)

	out, err := svc.Story(context.Background(), "programming")
	require.NoError(t, err)
	assert.Equal(t, "Programming", out.Story)
	require.Len(t, out.Posts, 2)
	assert.Equal(t, "p1", out.Posts[0].ID)

	out, err = svc.Story(context.Background(), "gardening")
	require.NoError(t, err)
	assert.Empty(t, out.Posts)
}

func TestCategories(t *testing.T) {
	out, err := NewPostService(fixedSource(samplePosts()), 10).Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cooking", out.Items[0].Name)
	assert.Equal(t, 4, out.Items[0].Count)
}

func TestLoadFailureIsWrapped(t *testing.T) {
	cause := fmt.Errorf("%w: refused", backend.ErrNetwork)
	svc := NewPostService(source.Func(func(ctx context.Context) ([]models.Post, error) {
		return nil, cause
	}), 10)

	_, err := svc.Explore(context.Background(), ExploreInput{})
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, backend.ErrNetwork)
	assert.True(t, errors.Is(err, cause))
}
