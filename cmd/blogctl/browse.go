package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"blog-front/query"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

const browseHelp = "Commands: search <text>, category [name], sort date|title|category, " +
	"page <n>, next, prev, clear, categories, show <id>, help, exit"

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Explore posts interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := app.posts.All(cmd.Context())
			if err != nil {
				return app.loadFailed(err)
			}
			e := query.NewExplorer(posts, app.posts.PageSize())
			runBrowse(cmd.Context(), app, e, bufio.NewScanner(cmd.InOrStdin()))
			return nil
		},
	}
}

// runBrowse는 한 번 불러온 목록 위에서 탐색 상태만 바꾸는 REPL 이다.
// 필터나 정렬을 바꾸면 1페이지로 돌아가고, 페이지 이동은 다른 조건을 유지한다.
func runBrowse(ctx context.Context, app *App, e *query.Explorer, scanner *bufio.Scanner) {
	showPage(e)
	for {
		printlnFn(browsePrompt(e.State()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, rest := parts[0], strings.Join(parts[1:], " ")

		switch cmd {
		case "help", "?":
			printlnFn(browseHelp)
			continue

		case "search", "s":
			e.SetSearchTerm(rest)

		case "category", "c":
			e.SetCategory(rest)

		case "sort":
			e.SetSort(query.ParseSortKey(rest))

		case "page", "p":
			n, err := strconv.Atoi(rest)
			if err != nil || !e.GoToPage(n) {
				printlnFn(fmt.Sprintf("No page %q (1-%d)", rest, e.Result().TotalPages))
				continue
			}

		case "next", "n":
			if !e.NextPage() {
				printlnFn("Already on the last page.")
				continue
			}

		case "prev":
			if !e.PrevPage() {
				printlnFn("Already on the first page.")
				continue
			}

		case "clear":
			e.ClearFilters()

		case "categories":
			for _, c := range query.CategoryCounts(e.Posts()) {
				printlnFn(fmt.Sprintf("%s (%d)", c.Name, c.Count))
			}
			continue

		case "show":
			if rest == "" {
				printlnFn("Usage: show <id>")
				continue
			}
			out, err := app.posts.Detail(ctx, rest)
			if err != nil {
				_ = app.loadFailed(err)
				continue
			}
			printDetail(app.out, out)
			continue

		case "exit", "quit", "q":
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}
		showPage(e)
	}
}

func browsePrompt(st query.State) string {
	var filters []string
	if st.SearchTerm != "" {
		filters = append(filters, "search="+st.SearchTerm)
	}
	if st.SelectedCategory != "" {
		filters = append(filters, "category="+st.SelectedCategory)
	}
	filters = append(filters, "sort="+string(st.SortBy))
	return fmt.Sprintf("browse (%s)>", strings.Join(filters, " "))
}

func showPage(e *query.Explorer) {
	res := e.Result()
	for _, p := range res.Page {
		printlnFn(fmt.Sprintf("%-10s  %s  %s  (%s)", p.Date, storyBadge(p.Story), p.Title, p.ID))
	}
	if len(res.Page) == 0 {
		printlnFn("No posts found.")
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d posts)", e.State().CurrentPage, res.TotalPages, res.Total))
}
