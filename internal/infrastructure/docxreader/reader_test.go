package docxreader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctools/internal/domain/entities"
)

// writeFixtureDocx собирает документ с заголовком, форматированными
// фрагментами и таблицей и записывает его во временный файл
func writeFixtureDocx(t *testing.T) string {
	t.Helper()

	w := docx.New().WithDefaultTheme()

	w.AddParagraph().Style("Heading1").AddText("Quarterly Report").Bold()

	centered := w.AddParagraph().Justification("center")
	centered.AddText("regular ")
	centered.AddText("underlined").Underline("single")

	w.AddParagraph().AddText("plain body text").Italic()

	tbl := w.AddTable(2, 2, 0, nil)
	tbl.TableRows[0].TableCells[0].AddParagraph().AddText("  Col1  ")
	tbl.TableRows[0].TableCells[1].AddParagraph().AddText("Col2")
	tbl.TableRows[1].TableCells[0].AddParagraph().AddText("a")
	tbl.TableRows[1].TableCells[1].AddParagraph().AddText("b")

	path := filepath.Join(t.TempDir(), "fixture.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = w.WriteTo(f)
	require.NoError(t, err)
	return path
}

func TestReader_Read(t *testing.T) {
	doc, err := NewReader().Read(writeFixtureDocx(t))
	require.NoError(t, err)

	require.Len(t, doc.Paragraphs, 3)

	title := doc.Paragraphs[0]
	assert.Equal(t, "Heading1", title.StyleName)
	require.Len(t, title.Runs, 1)
	assert.Equal(t, "Quarterly Report", title.Runs[0].Text)
	assert.True(t, title.Runs[0].Bold)

	centered := doc.Paragraphs[1]
	assert.Equal(t, entities.AlignCenter, centered.Alignment)
	require.Len(t, centered.Runs, 2)
	assert.False(t, centered.Runs[0].Underline)
	assert.True(t, centered.Runs[1].Underline)

	plain := doc.Paragraphs[2]
	assert.Equal(t, "", plain.StyleName)
	assert.Equal(t, entities.AlignLeft, plain.Alignment)
	require.Len(t, plain.Runs, 1)
	assert.True(t, plain.Runs[0].Italic)
	assert.False(t, plain.Runs[0].Bold)
}

func TestReader_TableCellsTrimmed(t *testing.T) {
	doc, err := NewReader().Read(writeFixtureDocx(t))
	require.NoError(t, err)

	require.Len(t, doc.Tables, 1)
	require.Len(t, doc.Tables[0].Rows, 2)
	assert.Equal(t, []string{"Col1", "Col2"}, doc.Tables[0].Rows[0])
	assert.Equal(t, []string{"a", "b"}, doc.Tables[0].Rows[1])
}

func TestReader_MissingFile(t *testing.T) {
	_, err := NewReader().Read(filepath.Join(t.TempDir(), "missing.docx"))
	assert.Error(t, err)
}
