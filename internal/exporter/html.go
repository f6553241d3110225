package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nikbrunner/zennav/internal/model"
)

const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
`

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/zennav-bookmarks-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("zennav-bookmarks-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// EnsureHTMLExt appends ".html" to path unless it already ends in .html or .htm.
func EnsureHTMLExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return path
	}
	return path + ".html"
}

// Encode renders t as Netscape bookmark HTML. Every ADD_DATE and
// LAST_MODIFIED is stamped with now.
func Encode(t model.Tree, now time.Time) string {
	var b strings.Builder
	stamp := strconv.FormatInt(now.Unix(), 10)

	b.WriteString(header)
	for _, f := range t {
		writeFolder(&b, f, stamp, 1)
	}
	b.WriteString("</DL><p>\n")

	return b.String()
}

func writeFolder(b *strings.Builder, f *model.Folder, stamp string, indent int) {
	prefix := strings.Repeat("    ", indent)

	fmt.Fprintf(b, "%s<DT><H3 ADD_DATE=\"%s\" LAST_MODIFIED=\"%s\">%s</H3>\n",
		prefix, stamp, stamp, html.EscapeString(f.Title))
	fmt.Fprintf(b, "%s<DL><p>\n", prefix)

	for _, c := range f.Children {
		switch c.Kind {
		case model.KindFolder:
			writeFolder(b, c.Folder, stamp, indent+1)
		case model.KindLink:
			writeLink(b, c.Link, stamp, indent+1)
		}
	}

	fmt.Fprintf(b, "%s</DL><p>\n", prefix)
}

func writeLink(b *strings.Builder, l *model.Link, stamp string, indent int) {
	prefix := strings.Repeat("    ", indent)

	icon := ""
	if l.Icon != "" {
		icon = fmt.Sprintf(" ICON=\"%s\"", html.EscapeString(l.Icon))
	}

	fmt.Fprintf(b, "%s<DT><A HREF=\"%s\" ADD_DATE=\"%s\"%s>%s</A>\n",
		prefix,
		html.EscapeString(l.URL),
		stamp,
		icon,
		html.EscapeString(l.Title),
	)
}
