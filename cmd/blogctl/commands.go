package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"blog-front/dto"
	"blog-front/renderer"
	"blog-front/services"
	"blog-front/session"
)

func newRootCmd(app *App) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Read the blog and manage posts from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.out = cmd.OutOrStdout()
			return app.init(cmd.Context(), logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newHomeCmd(app),
		newPostsCmd(app),
		newShowCmd(app),
		newStoryCmd(app),
		newCategoriesCmd(app),
		newBrowseCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newAdminCmd(app),
		newPreviewCmd(app),
	)
	return root
}

// loadFailed는 목록 조회 실패를 출력한다.
func (a *App) loadFailed(err error) error {
	if errors.Is(err, services.ErrPostNotFound) {
		a.printError("Post not found.")
		return err
	}
	a.printError(services.MsgLoadFailed)
	return err
}

// -------------------- public --------------------

func newHomeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the latest post and the ones right after it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.posts.Landing(cmd.Context())
			if err != nil {
				return app.loadFailed(err)
			}
			if out.Featured == nil {
				fmt.Fprintln(app.out, mutedStyle.Render("No posts yet."))
				return nil
			}
			fmt.Fprintln(app.out, titleStyle.Render("Latest"))
			printPostRow(app.out, *out.Featured)
			if len(out.Recent) > 0 {
				fmt.Fprintln(app.out, titleStyle.Render("Recent"))
				printPosts(app.out, out.Recent)
			}
			return nil
		},
	}
}

func newPostsCmd(app *App) *cobra.Command {
	var in services.ExploreInput

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts with search, category filter, sort and paging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.posts.Explore(cmd.Context(), in)
			if err != nil {
				return app.loadFailed(err)
			}
			printPage(app.out, out.Posts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in.Search, "search", "s", "", "case-insensitive substring of title or text")
	cmd.Flags().StringVarP(&in.Category, "category", "c", "", "exact story name")
	cmd.Flags().StringVar(&in.Sort, "sort", "date", "date, title or category")
	cmd.Flags().IntVarP(&in.Page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&in.PageSize, "page-size", 0, "posts per page (default from config)")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one post with related posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.posts.Detail(cmd.Context(), args[0])
			if err != nil {
				return app.loadFailed(err)
			}
			printDetail(app.out, out)
			return nil
		},
	}
}

func newStoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "story <name>",
		Short: "List every post of one story, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.posts.Story(cmd.Context(), args[0])
			if err != nil {
				return app.loadFailed(err)
			}
			fmt.Fprintln(app.out, titleStyle.Render(out.Story))
			printPosts(app.out, out.Posts)
			return nil
		},
	}
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List stories with their post counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.posts.Categories(cmd.Context())
			if err != nil {
				return app.loadFailed(err)
			}
			printCategories(app.out, out.Items)
			return nil
		},
	}
}

// -------------------- session --------------------

func newLoginCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as the blog admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := getPassword(app.out)
				if err != nil {
					return err
				}
				password = pw
			}

			if err := app.manager().Login(cmd.Context(), password); err != nil {
				var le *session.LoginError
				if errors.As(err, &le) {
					app.printError(le.Message)
				} else {
					app.printError(err.Error())
				}
				return err
			}
			fmt.Fprintln(app.out, "Signed in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted when empty)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored admin credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.out, "Signed out.")
			app.guard().Logout()
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the stored credential is still accepted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.guard().IsAuthenticated(cmd.Context()) {
				fmt.Fprintln(app.out, "Signed in.")
			} else {
				fmt.Fprintln(app.out, "Signed out.")
			}
			return nil
		},
	}
}

// -------------------- admin --------------------

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage posts (requires login)",
	}
	cmd.AddCommand(newAdminListCmd(app), newAdminCreateCmd(app), newAdminDeleteCmd(app))
	return cmd
}

func newAdminListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			out, err := app.admin.ListPosts(cmd.Context(), token)
			if err != nil {
				return app.adminFailed(err, services.MsgLoadFailed)
			}
			printAdminPosts(app.out, out)
			return nil
		},
	}
}

func newAdminCreateCmd(app *App) *cobra.Command {
	var (
		req  dto.CreatePostRequestDTO
		file string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				text, err := readSource(file, cmd.InOrStdin())
				if err != nil {
					return err
				}
				req.Text = text
			}

			token, err := app.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			out, err := app.admin.CreatePost(cmd.Context(), token, req)
			if err != nil {
				if errors.Is(err, services.ErrInvalidInput) {
					app.printError(services.UserMessage(err, services.MsgCreateFailed))
					return err
				}
				return app.adminFailed(err, services.MsgCreateFailed)
			}
			fmt.Fprintf(app.out, "Created %s\n", out.PostID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "post title")
	cmd.Flags().StringVar(&req.Story, "story", "", "story (category)")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "comma separated tags")
	cmd.Flags().StringVar(&req.Date, "date", "", "ISO-8601 date (default today)")
	cmd.Flags().StringVar(&req.Text, "text", "", "markdown body")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the markdown body from a file (- for stdin)")
	return cmd
}

func newAdminDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			if err := app.admin.DeletePost(cmd.Context(), token, args[0]); err != nil {
				return app.adminFailed(err, services.MsgDeleteFailed)
			}
			fmt.Fprintf(app.out, "Deleted %s\n", args[0])
			return nil
		},
	}
}

// -------------------- editor --------------------

func newPreviewCmd(app *App) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render markdown to sanitized HTML the way the editor preview does",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if template {
				fmt.Fprint(app.out, renderer.EditorTemplate+"\n")
				return nil
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readSource(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out, app.admin.Preview(src).HTML)
			return nil
		},
	}
	cmd.Flags().BoolVar(&template, "template", false, "print the starter markdown instead")
	return cmd
}
