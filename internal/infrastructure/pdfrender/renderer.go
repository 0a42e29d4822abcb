package pdfrender

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"doctools/internal/domain/entities"
	"doctools/internal/domain/repositories"
)

const (
	fontFamily = "Helvetica"

	pageMargin       = 72.0 // US letter, поля 1 дюйм со всех сторон
	paragraphSpacer  = 14.4 // 0.2 дюйма вместо пустого абзаца
	tableSpacer      = 21.6 // 0.3 дюйма после каждой таблицы
	lineHeightFactor = 1.3

	headerFontSize      = 12.0
	headerBottomPadding = 12.0
	bodyFontSize        = 11.0
	cellPadding         = 4.0
)

// styleTier фиксированный уровень стиля абзаца
type styleTier struct {
	size   float64
	before float64
	after  float64
	bold   bool
}

var (
	tierHeading1 = styleTier{size: 18, before: 12, after: 12, bold: true}
	tierHeading2 = styleTier{size: 14, before: 10, after: 10, bold: true}
	tierHeading3 = styleTier{size: 12, before: 8, after: 8, bold: true}
	tierNormal   = styleTier{size: 11, after: 6}
)

// styleFor подбирает уровень стиля по имени стиля абзаца.
// Сопоставление по подстроке с учетом регистра; pStyle в DOCX хранит
// идентификатор стиля, поэтому принимаются оба написания (Heading 1/Heading1).
func styleFor(name string) styleTier {
	switch {
	case strings.Contains(name, "Heading 1"), strings.Contains(name, "Heading1"),
		strings.Contains(name, "Title"):
		return tierHeading1
	case strings.Contains(name, "Heading 2"), strings.Contains(name, "Heading2"):
		return tierHeading2
	case strings.Contains(name, "Heading 3"), strings.Contains(name, "Heading3"):
		return tierHeading3
	default:
		return tierNormal
	}
}

// Renderer отрисовывает доменную модель документа в PDF через fpdf
type Renderer struct {
	logger repositories.Logger
}

// NewRenderer создает новый renderer
func NewRenderer(logger repositories.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Probe проверяет работоспособность PDF движка: пустой документ
// со встроенным шрифтом рисуется в память
func (r *Renderer) Probe() error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", bodyFontSize)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("PDF движок недоступен: %w", err)
	}
	return nil
}

// Render записывает документ в outputPath: сначала все абзацы,
// затем все таблицы, в порядке их следования
func (r *Renderer) Render(doc *entities.Document, outputPath string) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	for i := range doc.Paragraphs {
		r.renderParagraph(pdf, &doc.Paragraphs[i])
	}
	for i := range doc.Tables {
		r.renderTable(pdf, &doc.Tables[i])
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("ошибка записи PDF: %w", err)
	}
	return nil
}

func (r *Renderer) renderParagraph(pdf *fpdf.Fpdf, p *entities.Paragraph) {
	// Пустой абзац сохраняет вертикальный отступ, но не порождает блок текста
	if p.IsEmpty() {
		pdf.Ln(paragraphSpacer)
		return
	}

	tier := styleFor(p.StyleName)
	if tier.before > 0 {
		pdf.Ln(tier.before)
	}

	if p.Uniform() {
		seg := Segment{
			Bold:      p.Runs[0].Bold,
			Italic:    p.Runs[0].Italic,
			Underline: p.Runs[0].Underline,
		}
		r.writeUniform(pdf, p.Text(), seg, tier, p.Alignment)
		pdf.Ln(tier.after)
		return
	}

	markup := BuildMarkup(*p)
	segments, err := ParseMarkup(markup)
	if err != nil {
		// Сбой разметки не прерывает преобразование:
		// текст повторно рисуется без форматирования фрагментов
		if r.logger != nil {
			r.logger.Warning("разметка абзаца не разобрана, откат к простому тексту: %v", err)
		}
		r.writeUniform(pdf, StripMarkup(markup), Segment{}, tier, p.Alignment)
		pdf.Ln(tier.after)
		return
	}

	r.writeMixed(pdf, segments, tier, p.Alignment)
	pdf.Ln(tier.after)
}

// writeMixed рисует абзац со смешанным форматированием последовательными
// Write. Выравнивание достигается сдвигом начала строки на измеренную
// ширину фрагментов.
func (r *Renderer) writeMixed(pdf *fpdf.Fpdf, segments []Segment, tier styleTier, align entities.Alignment) {
	h := tier.size * lineHeightFactor

	var width float64
	for _, seg := range segments {
		pdf.SetFont(fontFamily, fontStyle(seg, tier), tier.size)
		width += pdf.GetStringWidth(seg.Text)
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetX(left + lineOffset(pageW-left-right, width, align))

	for _, seg := range segments {
		pdf.SetFont(fontFamily, fontStyle(seg, tier), tier.size)
		pdf.Write(h, seg.Text)
	}
	pdf.Ln(h)
}

// lineOffset возвращает горизонтальный сдвиг строки известной ширины
// внутри доступной области. Строка шире области начинается с левого края
// и переносится; выравнивание по ширине для одиночной строки эквивалентно
// левому краю.
func lineOffset(avail, width float64, align entities.Alignment) float64 {
	if width >= avail {
		return 0
	}
	switch align {
	case entities.AlignCenter:
		return (avail - width) / 2
	case entities.AlignRight:
		return avail - width
	default:
		return 0
	}
}

// writeUniform рисует абзац с единым форматированием одним блоком,
// с учетом выравнивания
func (r *Renderer) writeUniform(pdf *fpdf.Fpdf, text string, seg Segment, tier styleTier, align entities.Alignment) {
	pdf.SetFont(fontFamily, fontStyle(seg, tier), tier.size)
	pdf.MultiCell(0, tier.size*lineHeightFactor, text, "", alignString(align), false)
}

func fontStyle(seg Segment, tier styleTier) string {
	var style string
	if seg.Bold || tier.bold {
		style += "B"
	}
	if seg.Italic {
		style += "I"
	}
	if seg.Underline {
		style += "U"
	}
	return style
}

func alignString(a entities.Alignment) string {
	switch a {
	case entities.AlignCenter:
		return "C"
	case entities.AlignRight:
		return "R"
	case entities.AlignJustify:
		return "J"
	default:
		return "L"
	}
}

// renderTable рисует таблицу с фиксированной темой: серая шапка с
// полужирным светлым текстом, бежевые строки, сетка 1pt, текст по центру.
// Таблица без строк пропускается целиком, без отступа после нее.
func (r *Renderer) renderTable(pdf *fpdf.Fpdf, t *entities.Table) {
	if len(t.Rows) == 0 {
		return
	}

	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageW - left - right) / float64(cols)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)

	for i, row := range t.Rows {
		var rowHeight float64
		if i == 0 {
			pdf.SetFont(fontFamily, "B", headerFontSize)
			pdf.SetFillColor(128, 128, 128) // grey
			pdf.SetTextColor(245, 245, 245) // whitesmoke
			rowHeight = headerFontSize*lineHeightFactor + headerBottomPadding
		} else {
			pdf.SetFont(fontFamily, "", bodyFontSize)
			pdf.SetFillColor(245, 245, 220) // beige
			pdf.SetTextColor(0, 0, 0)
			rowHeight = bodyFontSize*lineHeightFactor + cellPadding
		}

		for c := 0; c < cols; c++ {
			var text string
			if c < len(row) {
				text = strings.ReplaceAll(row[c], "\n", " ")
			}
			pdf.CellFormat(colWidth, rowHeight, text, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(tableSpacer)
}
