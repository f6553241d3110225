package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/zennav/internal/config"
	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/picker"
	"github.com/nikbrunner/zennav/internal/search"
	"github.com/nikbrunner/zennav/internal/storage"
	"github.com/nikbrunner/zennav/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	logger := log.New(os.Stderr, "zennav: ", 0)
	if err := newRootCmd(logger).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env carries what every command needs to reach the bookmark store.
type env struct {
	v      *viper.Viper
	logger *log.Logger
}

// open resolves the configuration and opens the configured store.
func (e env) open() (*storage.Store, config.Config, error) {
	cfg, err := config.Load(e.v)
	if err != nil {
		return nil, config.Config{}, err
	}
	store, err := storage.Open(cfg.Backend, cfg.DataDir, e.logger)
	if err != nil {
		return nil, config.Config{}, err
	}
	return store, cfg, nil
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	e := env{v: config.New(), logger: logger}

	rootCmd := &cobra.Command{
		Use:   "zennav [query]",
		Short: "A searchable bookmark start page for the terminal",
		Long: `zennav keeps your bookmarks as folders of links and shows them as a dashboard.

Without arguments it opens the interactive dashboard. With a query it fuzzy
matches link titles, opens a single hit directly and shows a picker otherwise.

Data lives in ~/.config/zennav unless --data-dir or ZENNAV_DATA_DIR says otherwise.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runQuickSearch(cmd, e, strings.Join(args, " "))
			}
			return runTUI(e)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("data-dir", "", "directory holding bookmarks and config.yaml")
	flags.String("backend", "", "storage backend: json, sqlite or bolt")
	_ = e.v.BindPFlag(config.KeyDataDir, flags.Lookup("data-dir"))
	_ = e.v.BindPFlag(config.KeyBackend, flags.Lookup("backend"))

	rootCmd.AddCommand(
		newImportCmd(e),
		newExportCmd(e),
		newBulkCmd(e),
		newShowCmd(e),
		newCheckCmd(e),
		newWallpaperCmd(e),
	)
	return rootCmd
}

// runTUI runs the interactive dashboard and saves the tree if it changed.
func runTUI(e env) error {
	store, _, err := e.open()
	if err != nil {
		return err
	}
	defer store.Close()

	settings, t, err := store.Load()
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}

	app := tui.NewApp(tui.AppParams{Tree: t, Settings: settings, Opener: openURL})
	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}

	finalApp := finalModel.(tui.App)
	if !finalApp.Dirty() {
		return nil
	}
	if err := store.Save(settings, finalApp.Tree()); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	return nil
}

// runQuickSearch performs a fuzzy search and opens the selected link.
func runQuickSearch(cmd *cobra.Command, e env, query string) error {
	store, _, err := e.open()
	if err != nil {
		return err
	}
	defer store.Close()

	_, t, err := store.Load()
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}

	out := cmd.OutOrStdout()
	results := search.FuzzySearchLinks(t, query)
	if len(results) == 0 {
		fmt.Fprintf(out, "No bookmarks found for '%s'\n", query)
		return nil
	}

	var selected *model.Link
	if len(results) == 1 {
		// Single result - select it directly
		selected = results[0].Link
	} else {
		selected, err = pick(results, query)
		if err != nil {
			return err
		}
	}
	if selected == nil {
		return nil
	}

	fmt.Fprintf(out, "Opening: %s\n", selected.Title)
	return openURL(selected.URL)
}

// pick shows the picker and returns the chosen link, nil when cancelled.
func pick(results []search.Result, query string) (*model.Link, error) {
	program := tea.NewProgram(picker.New(results, query))
	finalModel, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}

	finalPicker := finalModel.(picker.Picker)
	if finalPicker.Cancelled() {
		return nil, nil
	}
	return finalPicker.SelectedLink(), nil
}

// openURL opens a URL in the default browser.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return errors.New("no browser opener for " + runtime.GOOS)
	}
	return cmd.Start()
}
