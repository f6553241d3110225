package main

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const devExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>Dev</H3>
    <DL><p>
        <DT><A HREF="https://go.dev">Go</A>
    </DL><p>
</DL><p>
`

// run executes the CLI against dir with stdin and returns its stdout.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ZENNAV_BACKEND", "")

	cmd := newRootCmd(log.New(io.Discard, "", 0))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestShow_DefaultBookmarks(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "show", "--plain")
	assert.NilError(t, err)

	assert.Check(t, is.Contains(out, "# zennav"))
	assert.Check(t, is.Contains(out, "## 常用推荐"))
	assert.Check(t, is.Contains(out, "- [Bilibili](https://www.bilibili.com)"))
}

func TestShow_Query(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "show", "--plain", "you")
	assert.NilError(t, err)

	assert.Check(t, is.Contains(out, `# Results for "you"`))
	assert.Check(t, is.Contains(out, "YouTube"))
	assert.Check(t, !strings.Contains(out, "Bilibili"))
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "bookmarks.html", devExport)

	out, err := run(t, dir, "", "import", src)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(out, "Imported 1 bookmarks, 1 folders\n"))

	out, err = run(t, dir, "", "show", "--plain")
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "## Dev"))
	assert.Check(t, !strings.Contains(out, "Bilibili"), "import replaces the tree")

	out, err = run(t, dir, "", "export", filepath.Join(dir, "backup"))
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "backup.html"))

	exported, err := os.ReadFile(filepath.Join(dir, "backup.html"))
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(exported), `<DT><A HREF="https://go.dev"`))
	assert.Check(t, is.Contains(string(exported), ">Dev</H3>"))
}

func TestImport_Unparseable(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "notes.html", "<html><body><p>hello</p></body></html>")
	empty := writeFile(t, dir, "empty.html", "<DL><p></DL><p>")

	for _, path := range []string{bad, empty} {
		_, err := run(t, dir, "", "import", path)
		assert.ErrorContains(t, err, "could not parse")
	}

	out, err := run(t, dir, "", "show", "--plain")
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "Bilibili"), "bookmarks untouched")
}

func TestBulk(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "知音漫画:https://m.zymk.cn\n海量漫画：https://m.kanman.com/sort/\nnot a link\n", "bulk", "--folder", "漫画")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(out, "Added 2 links to 漫画\n"))

	out, err = run(t, dir, "", "show", "--plain", "漫画")
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "- [知音漫画](https://m.zymk.cn)"))
	assert.Check(t, is.Contains(out, "- [海量漫画](https://m.kanman.com/sort/)"))
}

func TestBulk_FromFile(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "links.txt", "Go:https://go.dev\n")

	out, err := run(t, dir, "", "bulk", "--folder", "常用推荐", src)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(out, "Added 1 links to 常用推荐\n"))
}

func TestBulk_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "Go:https://go.dev\n", "bulk")
	assert.ErrorContains(t, err, "folder")

	_, err = run(t, dir, "nothing here\n", "bulk", "--folder", "Dev")
	assert.ErrorContains(t, err, "no valid links recognized")
}

func TestWallpaper(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "wallpaper", "add", "ftp://example.com")
	assert.ErrorContains(t, err, "http")

	out, err := run(t, dir, "", "wallpaper", "add", "https://walls.example.com/random")
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "https://walls.example.com/random"))

	out, err = run(t, dir, "", "wallpaper", "ls")
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "mode: api"))
	assert.Check(t, is.Contains(out, "* https://walls.example.com/random"))
	assert.Check(t, is.Contains(out, "background: https://walls.example.com/random"))

	_, err = run(t, dir, "", "wallpaper", "rm", "https://walls.example.com/random")
	assert.NilError(t, err)

	out, err = run(t, dir, "", "wallpaper", "ls")
	assert.NilError(t, err)
	assert.Check(t, !strings.Contains(out, "walls.example.com"))
	assert.Check(t, is.Contains(out, "* https://imgapi.xl0408.top/index.php"))

	_, err = run(t, dir, "", "wallpaper", "rm", "https://unknown.example.com")
	assert.ErrorContains(t, err, "not a configured wallpaper API")
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	dir := t.TempDir()
	src := writeFile(t, dir, "links.html", `<DL><p>
<DT><A HREF="`+srv.URL+`/ok">Alive</A>
<DT><A HREF="`+srv.URL+`/gone">Gone</A>
</DL><p>`)
	_, err := run(t, dir, "", "import", src)
	assert.NilError(t, err)

	t.Setenv("ZENNAV_CHECK_TIMEOUT", "5s")
	out, err := run(t, dir, "", "check")
	assert.NilError(t, err)

	assert.Check(t, is.Contains(out, "DEAD        Gone  "+srv.URL+"/gone  (404)"))
	assert.Check(t, is.Contains(out, "1 healthy, 1 dead, 0 unreachable"))
	assert.Check(t, !strings.Contains(out, "Alive"))
}

func TestUnknownBackend(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "--backend", "redis", "show")
	assert.ErrorContains(t, err, "backend")
}
