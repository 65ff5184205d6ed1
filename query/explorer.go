package query

import "blog-front/models"

// Explorer owns the query state of one view over a loaded collection.
// Any filter or sort change resets the page to 1; moving between pages
// leaves the other fields alone. An Explorer is not safe for concurrent use.
type Explorer struct {
	posts  []models.Post
	state  State
	result Result
}

func NewExplorer(posts []models.Post, pageSize int) *Explorer {
	e := &Explorer{posts: posts, state: NewState(pageSize)}
	e.apply()
	return e
}

func (e *Explorer) apply() {
	e.result = Apply(e.posts, e.state)
}

// Load replaces the collection, typically once a fetch has completed.
func (e *Explorer) Load(posts []models.Post) {
	e.posts = posts
	e.apply()
}

func (e *Explorer) State() State   { return e.state }
func (e *Explorer) Result() Result { return e.result }
func (e *Explorer) Posts() []models.Post {
	return e.posts
}

func (e *Explorer) SetSearchTerm(term string) {
	e.state.SearchTerm = term
	e.state.CurrentPage = 1
	e.apply()
}

func (e *Explorer) SetCategory(category string) {
	e.state.SelectedCategory = category
	e.state.CurrentPage = 1
	e.apply()
}

func (e *Explorer) SetSort(key SortKey) {
	e.state.SortBy = key
	e.state.CurrentPage = 1
	e.apply()
}

// ClearFilters restores the default search, category and sort.
func (e *Explorer) ClearFilters() {
	e.state = NewState(e.state.PageSize)
	e.apply()
}

// GoToPage moves to page n. Pages outside [1, TotalPages] are rejected
// and leave the state unchanged.
func (e *Explorer) GoToPage(n int) bool {
	if n < 1 || n > e.result.TotalPages {
		return false
	}
	e.state.CurrentPage = n
	e.apply()
	return true
}

func (e *Explorer) NextPage() bool { return e.GoToPage(e.state.CurrentPage + 1) }
func (e *Explorer) PrevPage() bool { return e.GoToPage(e.state.CurrentPage - 1) }
