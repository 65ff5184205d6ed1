// Package query filters, sorts and paginates an in-memory post collection.
package query

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"blog-front/models"
)

// Result is one page of a query together with the page count.
type Result struct {
	Page       []models.Post `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
}

// Apply runs category filter, text filter, sort and pagination in that order.
// The input slice is never modified and equal inputs give equal outputs.
func Apply(posts []models.Post, state State) Result {
	state = state.normalized()

	filtered := Filter(posts, state)
	Sort(filtered, state.SortBy)

	total := len(filtered)
	totalPages := (total + state.PageSize - 1) / state.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := []models.Post{}
	start := (state.CurrentPage - 1) * state.PageSize
	if start < total {
		end := min(start+state.PageSize, total)
		page = filtered[start:end]
	}

	return Result{Page: page, TotalPages: totalPages, Total: total}
}

// Filter returns a new slice with the posts that pass the category and
// search term filters. Category matching is exact; search is a
// case-insensitive substring match on title or text.
func Filter(posts []models.Post, state State) []models.Post {
	term := strings.ToLower(strings.TrimSpace(state.SearchTerm))

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if state.SelectedCategory != "" && p.Story != state.SelectedCategory {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Text), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders posts in place with a stable sort, so equal keys keep the
// collection order. Posts with an unparseable date sort after all dated posts.
func Sort(posts []models.Post, key SortKey) {
	switch key {
	case SortByTitle:
		c := collate.New(language.English)
		slices.SortStableFunc(posts, func(a, b models.Post) int {
			return c.CompareString(a.Title, b.Title)
		})
	case SortByCategory:
		c := collate.New(language.English)
		slices.SortStableFunc(posts, func(a, b models.Post) int {
			return c.CompareString(a.Story, b.Story)
		})
	default:
		type dated struct {
			post models.Post
			at   time.Time
			ok   bool
		}
		entries := make([]dated, len(posts))
		for i, p := range posts {
			at, ok := p.Timestamp()
			entries[i] = dated{post: p, at: at, ok: ok}
		}
		slices.SortStableFunc(entries, func(a, b dated) int {
			switch {
			case a.ok && b.ok:
				return b.at.Compare(a.at)
			case a.ok:
				return -1
			case b.ok:
				return 1
			default:
				return 0
			}
		})
		for i := range entries {
			posts[i] = entries[i].post
		}
	}
}

// CategoryCount is one category filter option.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryCounts lists the distinct stories of posts with their post counts,
// ordered by name.
func CategoryCounts(posts []models.Post) []CategoryCount {
	counts := map[string]int{}
	for _, p := range posts {
		if p.Story == "" {
			continue
		}
		counts[p.Story]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryCount{Name: name, Count: n})
	}
	c := collate.New(language.English)
	slices.SortFunc(out, func(a, b CategoryCount) int {
		return c.CompareString(a.Name, b.Name)
	})
	return out
}
