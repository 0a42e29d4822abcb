package watermarkers

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"doctools/internal/domain/entities"
)

// Отступ от верхнего/нижнего края страницы для позиций top и bottom
const edgeOffset = 50.0

// PDFCPUWatermarker накладывает текстовый водяной знак через PDFCPU
type PDFCPUWatermarker struct{}

// NewPDFCPUWatermarker создает новый PDFCPU водяной знак
func NewPDFCPUWatermarker() *PDFCPUWatermarker {
	return &PDFCPUWatermarker{}
}

// Probe проверяет готовность бэкенда
func (w *PDFCPUWatermarker) Probe() error {
	return nil
}

// Apply накладывает текст на каждую страницу входного документа.
// Документ без страниц копируется без изменений (pages: 0).
func (w *PDFCPUWatermarker) Apply(inputPath, outputPath, text string, opts *entities.WatermarkOptions) (*entities.WatermarkResult, error) {
	pageCount, err := api.PageCountFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения PDF: %w", err)
	}

	if pageCount == 0 {
		if err := copyFile(inputPath, outputPath); err != nil {
			return nil, fmt.Errorf("ошибка копирования файла: %w", err)
		}
		return &entities.WatermarkResult{Pages: 0, Text: text, Position: opts.Position}, nil
	}

	wm, err := api.TextWatermark(text, watermarkDescription(opts), true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания водяного знака: %w", err)
	}

	// Смещение от края задается после разбора описания,
	// якоря tc/bc привязаны к самим краям страницы
	switch opts.Position {
	case entities.PositionTop:
		wm.Dy = -edgeOffset
	case entities.PositionBottom:
		wm.Dy = edgeOffset
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.AddWatermarksFile(inputPath, outputPath, nil, wm, conf); err != nil {
		return nil, fmt.Errorf("ошибка наложения водяного знака: %w", err)
	}

	return &entities.WatermarkResult{Pages: pageCount, Text: text, Position: opts.Position}, nil
}

// watermarkDescription собирает описание водяного знака для PDFCPU.
// Поворот выполняется вокруг центра страницы, поэтому для diagonal
// центр повернутого текста совпадает с центром страницы при любом угле.
func watermarkDescription(opts *entities.WatermarkOptions) string {
	pos := "c"
	rot := 0.0
	switch opts.Position {
	case entities.PositionDiagonal:
		rot = opts.Rotation
	case entities.PositionTop:
		pos = "tc"
	case entities.PositionBottom:
		pos = "bc"
	}

	return fmt.Sprintf(
		"fontname:Helvetica-Bold, points:%d, scalefactor:1 abs, pos:%s, rot:%g, opacity:%.2f, fillcolor:#%02x%02x%02x",
		opts.FontSize, pos, rot, opts.Opacity,
		colorByte(opts.Color.R), colorByte(opts.Color.G), colorByte(opts.Color.B),
	)
}

func colorByte(c float64) int {
	return int(math.Round(c * 255))
}

// copyFile копирует файл из src в dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}
