package bulk_test

import (
	"errors"
	"testing"
	"time"

	"github.com/nikbrunner/zennav/internal/bulk"
	"github.com/nikbrunner/zennav/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const comics = `知音漫画:https://m.zymk.cn
badlinenocolon
海量漫画:https://m.kanman.com/sort/`

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []bulk.Entry
	}{
		{
			name: "skips lines without colon",
			text: comics,
			want: []bulk.Entry{
				{Title: "知音漫画", URL: "https://m.zymk.cn"},
				{Title: "海量漫画", URL: "https://m.kanman.com/sort/"},
			},
		},
		{
			name: "full-width colon",
			text: "爱优漫画：https://m.kanman.com/",
			want: []bulk.Entry{{Title: "爱优漫画", URL: "https://m.kanman.com/"}},
		},
		{
			name: "earliest colon wins",
			text: "番剧：B站:https://bilibili.com\nA:B：C",
			want: []bulk.Entry{
				{Title: "番剧", URL: "B站:https://bilibili.com"},
				{Title: "A", URL: "B：C"},
			},
		},
		{
			name: "trims around separator and line",
			text: "  Go docs  :   https://go.dev/doc  \r\n\n\t\n",
			want: []bulk.Entry{{Title: "Go docs", URL: "https://go.dev/doc"}},
		},
		{
			name: "empty sides are skipped",
			text: ":https://nameless.example\nnourl:\n  :  ",
			want: nil,
		},
		{
			name: "duplicates kept in order",
			text: "a:1\nb:2\na:1",
			want: []bulk.Entry{{Title: "a", URL: "1"}, {Title: "b", URL: "2"}, {Title: "a", URL: "1"}},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.DeepEqual(t, bulk.Parse(tt.text), tt.want)
		})
	}
}

func TestIngest_ExistingFolder(t *testing.T) {
	existing := &model.Link{ID: "bili", Title: "Bilibili", URL: "https://www.bilibili.com"}
	original := model.Tree{
		{ID: "1", Title: "常用推荐", Children: []model.Node{model.LinkNode(existing)}},
	}
	now := time.Unix(1700000000, 0)

	got, n, err := bulk.Ingest(original, "常用推荐", comics, now)
	assert.NilError(t, err)
	assert.Equal(t, n, 2)

	assert.Assert(t, is.Len(got, 1))
	children := got[0].Children
	assert.Assert(t, is.Len(children, 3))
	assert.Check(t, children[0].Link == existing)
	assert.Equal(t, children[1].Link.Title, "知音漫画")
	assert.Equal(t, children[2].Link.URL, "https://m.kanman.com/sort/")
	assert.Equal(t, children[1].Link.AddDate, "1700000000")
	assert.Check(t, children[1].Link.ID != children[2].Link.ID)

	assert.Assert(t, is.Len(original[0].Children, 1), "input must not be mutated")
}

func TestIngest_NewFolderAppended(t *testing.T) {
	original := model.DefaultTree()

	got, n, err := bulk.Ingest(original, "  漫画  ", comics, time.Now())
	assert.NilError(t, err)
	assert.Equal(t, n, 2)
	assert.Assert(t, is.Len(got, len(original)+1))
	assert.Equal(t, got[len(got)-1].Title, "漫画")
	assert.Assert(t, is.Len(got[len(got)-1].Children, 2))
}

func TestIngest_Errors(t *testing.T) {
	original := model.DefaultTree()

	got, n, err := bulk.Ingest(original, "   ", comics, time.Now())
	assert.Assert(t, errors.Is(err, bulk.ErrNoFolderName))
	assert.Equal(t, n, 0)
	assert.Check(t, &got[0] == &original[0])

	got, n, err = bulk.Ingest(original, "漫画", "no colons\nanywhere", time.Now())
	assert.Assert(t, errors.Is(err, bulk.ErrNoLinks))
	assert.Equal(t, n, 0)
	assert.Check(t, &got[0] == &original[0])
	assert.ErrorContains(t, err, "name:url")
}
