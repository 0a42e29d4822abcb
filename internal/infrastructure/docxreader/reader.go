package docxreader

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"doctools/internal/domain/entities"
)

// Reader читает структуру DOCX документа в доменную модель:
// абзацы с фрагментами и их форматированием, таблицы как сетки текстов.
// Изображения, колонтитулы и вложенные таблицы не переносятся.
type Reader struct{}

// NewReader создает новый DOCX reader
func NewReader() *Reader {
	return &Reader{}
}

// Read загружает документ и обходит его элементы в порядке следования
func (r *Reader) Read(path string) (*entities.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	doc, err := docx.Parse(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора DOCX: %w", err)
	}

	result := &entities.Document{}
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			result.Paragraphs = append(result.Paragraphs, convertParagraph(it))
		case *docx.Table:
			result.Tables = append(result.Tables, convertTable(it))
		}
	}

	return result, nil
}

func convertParagraph(p *docx.Paragraph) entities.Paragraph {
	para := entities.Paragraph{
		StyleName: styleName(p),
		Alignment: alignment(p),
	}

	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}

		var sb strings.Builder
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				sb.WriteString(t.Text)
			}
		}
		if sb.Len() == 0 {
			continue
		}

		para.Runs = append(para.Runs, entities.Run{
			Text:      sb.String(),
			Bold:      run.RunProperties != nil && run.RunProperties.Bold != nil,
			Italic:    run.RunProperties != nil && run.RunProperties.Italic != nil,
			Underline: run.RunProperties != nil && run.RunProperties.Underline != nil,
		})
	}

	return para
}

func styleName(p *docx.Paragraph) string {
	if p.Properties == nil || p.Properties.Style == nil {
		return ""
	}
	return p.Properties.Style.Val
}

func alignment(p *docx.Paragraph) entities.Alignment {
	if p.Properties == nil || p.Properties.Justification == nil {
		return entities.AlignLeft
	}
	return entities.ParseAlignment(p.Properties.Justification.Val)
}

// convertTable собирает сетку текстов ячеек. Текст каждой ячейки —
// абзацы, соединенные переводом строки и очищенные от пробелов по краям.
func convertTable(t *docx.Table) entities.Table {
	table := entities.Table{}
	for _, row := range t.TableRows {
		var cells []string
		for _, cell := range row.TableCells {
			var parts []string
			for _, p := range cell.Paragraphs {
				cp := convertParagraph(p)
				parts = append(parts, cp.Text())
			}
			cells = append(cells, strings.TrimSpace(strings.Join(parts, "\n")))
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}
