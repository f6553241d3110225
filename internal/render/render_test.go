package render_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/zennav/internal/display"
	"github.com/nikbrunner/zennav/internal/model"
	"github.com/nikbrunner/zennav/internal/render"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func sections() []display.Section {
	return []display.Section{
		{ID: "a", Title: "Dev", Links: []*model.Link{
			{ID: "l1", Title: "Go [docs]", URL: "https://go.dev/doc"},
			{ID: "l2", Title: "snake_case", URL: "https://example.com"},
		}},
		{ID: "b", Title: "Container"},
	}
}

func TestMarkdown(t *testing.T) {
	md := render.Markdown(sections(), "")

	want := "# zennav\n\n" +
		"## Dev\n\n" +
		"- [Go \\[docs\\]](https://go.dev/doc)\n" +
		"- [snake\\_case](https://example.com)\n\n" +
		"## Container\n\n" +
		"_No bookmarks yet._\n\n"
	assert.Equal(t, md, want)
}

func TestMarkdown_Query(t *testing.T) {
	md := render.Markdown(sections()[:1], "  go ")
	assert.Check(t, strings.HasPrefix(md, "# Results for \"go\"\n\n"))

	md = render.Markdown(nil, "nothing")
	assert.Check(t, is.Contains(md, "_No bookmarks match._"))
}

func TestTerminal(t *testing.T) {
	out, err := render.Terminal(render.Markdown(sections(), ""), "notty", 80)
	assert.NilError(t, err)

	assert.Check(t, is.Contains(out, "Dev"))
	assert.Check(t, is.Contains(out, "https://go.dev/doc"))
	assert.Check(t, is.Contains(out, "Container"))
}

func TestStyle(t *testing.T) {
	s := model.DefaultSettings()
	assert.Equal(t, render.Style(s), "auto")

	s.ThemeMode = model.ThemeDark
	assert.Equal(t, render.Style(s), "dark")

	s.ThemeMode = model.ThemeLight
	assert.Equal(t, render.Style(s), "light")
}
