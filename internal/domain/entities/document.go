package entities

import "strings"

// Alignment выравнивание абзаца
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// ParseAlignment преобразует значение w:jc из DOCX в выравнивание.
// Отсутствующее или неизвестное значение дает выравнивание по левому краю.
func ParseAlignment(val string) Alignment {
	switch val {
	case "center":
		return AlignCenter
	case "right", "end":
		return AlignRight
	case "both", "justify", "distribute":
		return AlignJustify
	default:
		return AlignLeft
	}
}

// Run непрерывный фрагмент текста абзаца с единым форматированием
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
}

// Paragraph абзац документа: последовательность фрагментов,
// имя стиля и выравнивание
type Paragraph struct {
	Runs      []Run
	StyleName string
	Alignment Alignment
}

// Text возвращает сплошной текст абзаца без форматирования
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsEmpty сообщает, состоит ли абзац только из пробельных символов
func (p *Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text()) == ""
}

// Uniform сообщает, одинаково ли форматирование всех фрагментов абзаца
func (p *Paragraph) Uniform() bool {
	for i := 1; i < len(p.Runs); i++ {
		if p.Runs[i].Bold != p.Runs[0].Bold ||
			p.Runs[i].Italic != p.Runs[0].Italic ||
			p.Runs[i].Underline != p.Runs[0].Underline {
			return false
		}
	}
	return true
}

// Table таблица документа: прямоугольная сетка текстов ячеек
type Table struct {
	Rows [][]string
}

// Document read-only модель DOCX документа на время одного преобразования
type Document struct {
	Paragraphs []Paragraph
	Tables     []Table
}

// ConversionResult представляет результат преобразования DOCX в PDF
type ConversionResult struct {
	Paragraphs int
	Tables     int
	OutputSize int64
}
