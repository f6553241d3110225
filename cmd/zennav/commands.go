package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/nikbrunner/zennav/internal/bulk"
	"github.com/nikbrunner/zennav/internal/culler"
	"github.com/nikbrunner/zennav/internal/display"
	"github.com/nikbrunner/zennav/internal/exporter"
	"github.com/nikbrunner/zennav/internal/importer"
	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/render"
	"github.com/nikbrunner/zennav/internal/tree"
	"github.com/spf13/cobra"
)

func newImportCmd(e env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all bookmarks with a browser bookmark export (HTML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer file.Close()

			imported, err := importer.Decode(file)
			if err != nil && !errors.Is(err, importer.ErrUnparseable) {
				return fmt.Errorf("read %s: %w", path, err)
			}
			if err != nil || len(imported) == 0 {
				// Existing bookmarks stay as they are.
				return fmt.Errorf("could not parse %s: not a bookmark export", path)
			}

			store, _, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			settings, _, err := store.Load()
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			if err := store.Save(settings, imported); err != nil {
				return fmt.Errorf("save bookmarks: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d bookmarks, %d folders\n",
				tree.CountLinks(imported), tree.CountFolders(imported))
			return nil
		},
	}
}

func newExportCmd(e env) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export bookmarks as a browser-compatible HTML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputPath string
			if len(args) > 0 {
				outputPath = exporter.EnsureHTMLExt(args[0])
			} else {
				var err error
				outputPath, err = exporter.DefaultExportPath()
				if err != nil {
					return fmt.Errorf("default export path: %w", err)
				}
			}

			store, _, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			_, t, err := store.Load()
			if err != nil {
				return fmt.Errorf("load bookmarks: %w", err)
			}

			if err := os.WriteFile(outputPath, []byte(exporter.Encode(t, time.Now())), 0644); err != nil {
				return fmt.Errorf("write file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmarks, %d folders to %s\n",
				tree.CountLinks(t), tree.CountFolders(t), outputPath)
			return nil
		},
	}
}

func newBulkCmd(e env) *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "bulk --folder NAME [file|-]",
		Short: "Add many links at once from name:url lines",
		Long: `Reads one link per line as name:url (a full-width colon works too) from a
file, or from stdin when the file is "-" or missing. The links go to the
top-level folder with that exact name, which is created when missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) > 0 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open file: %w", err)
				}
				defer file.Close()
				in = file
			}
			text, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read links: %w", err)
			}

			store, _, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			settings, t, err := store.Load()
			if err != nil {
				return fmt.Errorf("load bookmarks: %w", err)
			}

			updated, added, err := bulk.Ingest(t, folder, string(text), time.Now())
			if err != nil {
				return err
			}
			if err := store.Save(settings, updated); err != nil {
				return fmt.Errorf("save bookmarks: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %d links to %s\n", added, strings.TrimSpace(folder))
			return nil
		},
	}
	cmd.Flags().StringVar(&folder, "folder", "", "target folder name")
	return cmd
}

func newShowCmd(e env) *cobra.Command {
	var (
		plain bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "show [query]",
		Short: "Print the dashboard, optionally filtered by a query",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			store, _, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			settings, t, err := store.Load()
			if err != nil {
				return fmt.Errorf("load bookmarks: %w", err)
			}

			md := render.Markdown(display.Sections(t, query), query)
			if plain {
				_, err := io.WriteString(cmd.OutOrStdout(), md)
				return err
			}

			out, err := render.Terminal(md, render.Style(settings), width)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap column")
	return cmd
}

func newCheckCmd(e env) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every link for dead or unreachable URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			_, t, err := store.Load()
			if err != nil {
				return fmt.Errorf("load bookmarks: %w", err)
			}

			located := tree.Links(t)
			links := make([]*model.Link, len(located))
			for i, l := range located {
				links[i] = l.Link
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			errOut := cmd.ErrOrStderr()
			results := culler.CheckURLs(ctx, links, cfg.CheckConcurrency, cfg.CheckTimeout, cfg.CullExcludeDomains,
				func(completed, total int) {
					fmt.Fprintf(errOut, "\rChecking %d/%d", completed, total)
				})
			if len(links) > 0 {
				fmt.Fprintln(errOut)
			}

			healthy, dead, unreachable := culler.Group(results)
			printResults(cmd.OutOrStdout(), "DEAD", dead)
			printResults(cmd.OutOrStdout(), "UNREACHABLE", unreachable)
			if verbose {
				printResults(cmd.OutOrStdout(), "HEALTHY", healthy)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d healthy, %d dead, %d unreachable\n",
				len(healthy), len(dead), len(unreachable))

			return context.Cause(ctx)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also list healthy links")
	return cmd
}

func printResults(w io.Writer, label string, results []culler.Result) {
	for _, r := range results {
		detail := r.Error
		if r.StatusCode != 0 {
			detail = fmt.Sprintf("%d", r.StatusCode)
		}
		fmt.Fprintf(w, "%-11s %s  %s  (%s)\n", label, r.Link.Title, r.Link.URL, detail)
	}
}

func newWallpaperCmd(e env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallpaper",
		Short: "Manage random wallpaper APIs",
	}

	// update loads the settings, applies fn and saves the result.
	update := func(fn func(model.Settings) (model.Settings, error)) error {
		store, _, err := e.open()
		if err != nil {
			return err
		}
		defer store.Close()

		settings, t, err := store.Load()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		settings, err = fn(settings)
		if err != nil {
			return err
		}
		if err := store.Save(settings, t); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		return nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "ls",
			Short: "List wallpaper APIs, the active one marked with *",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, _, err := e.open()
				if err != nil {
					return err
				}
				defer store.Close()

				settings, _, err := store.Load()
				if err != nil {
					return fmt.Errorf("load settings: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "mode: %s\n", settings.WallpaperMode)
				for _, api := range settings.WallpaperAPIs {
					marker := " "
					if api == settings.ActiveWallpaperAPI {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %s\n", marker, api)
				}
				fmt.Fprintf(out, "background: %s\n", settings.BackgroundURL())
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <url>",
			Short: "Add a wallpaper API and make it active",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				err := update(func(s model.Settings) (model.Settings, error) {
					return model.AddWallpaperAPI(s, args[0])
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Active wallpaper API: %s\n", strings.TrimSpace(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <url>",
			Short: "Remove a wallpaper API",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				api := strings.TrimSpace(args[0])
				err := update(func(s model.Settings) (model.Settings, error) {
					for _, existing := range s.WallpaperAPIs {
						if existing == api {
							return model.RemoveWallpaperAPI(s, api), nil
						}
					}
					return s, fmt.Errorf("%s is not a configured wallpaper API", api)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", api)
				return nil
			},
		},
	)
	return cmd
}
