package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"blog-front/dto"
	"blog-front/services"
)

const wrapWidth = 80

func storyBadge(story string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(services.StoryColor(story))).
		Render("[" + story + "]")
}

func printPostRow(w io.Writer, p dto.PostDTO) {
	fmt.Fprintf(w, "%-10s  %s  %s  %s\n", p.Date, storyBadge(p.Story), p.Title, mutedStyle.Render("("+p.ID+")"))
}

func printPosts(w io.Writer, posts []dto.PostDTO) {
	if len(posts) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No posts found."))
		return
	}
	for _, p := range posts {
		printPostRow(w, p)
	}
}

func printPage(w io.Writer, page dto.PaginationPostDTO) {
	printPosts(w, page.Data)
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Page %d of %d (%d posts)", page.Page, page.TotalPages, page.Total)))
}

func printCategories(w io.Writer, items []dto.FilterItem) {
	for _, it := range items {
		fmt.Fprintf(w, "%s %d\n", storyBadge(it.Name), it.Count)
	}
}

// renderMarkdown은 터미널용으로 본문을 렌더링한다. 실패하면 원문을 그대로 쓴다.
func renderMarkdown(src string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return out
}

func printDetail(w io.Writer, d dto.PostDetailDTO) {
	fmt.Fprintln(w, titleStyle.Render(d.Post.Title))
	fmt.Fprintf(w, "%s  %s\n", storyBadge(d.Post.Story), d.Post.Date)
	if len(d.Post.Tags) > 0 {
		fmt.Fprintln(w, mutedStyle.Render("#"+strings.Join(d.Post.Tags, " #")))
	}
	fmt.Fprintln(w, renderMarkdown(d.Post.Text))

	if len(d.Related) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Related posts"))
		printPosts(w, d.Related)
	}
	fmt.Fprintln(w, mutedStyle.Render("Share: "+d.ShareText))
}

func printAdminPosts(w io.Writer, list dto.AdminPostListDTO) {
	fmt.Fprintf(w, "%d posts\n", list.Total)
	for _, p := range list.Items {
		fmt.Fprintf(w, "%-12s  %s  %s  %s\n", p.DisplayDate, storyBadge(p.Story), p.Title, mutedStyle.Render("("+p.ID+")"))
		if p.Excerpt != "" {
			fmt.Fprintln(w, mutedStyle.Render("    "+p.Excerpt))
		}
	}
}
