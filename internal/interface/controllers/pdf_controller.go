package controllers

import (
	"fmt"
	"io"

	"doctools/internal/domain/entities"
)

// Интерфейсы сценариев, которыми управляет контроллер
type compressRunner interface {
	Probe() error
	Execute(inputPath, outputPath, level string) (*entities.CompressionResult, error)
}

type watermarkRunner interface {
	Probe() error
	Execute(inputPath, outputPath, text string, opts *entities.WatermarkOptions) (*entities.WatermarkResult, error)
}

var pdfOperations = []string{"compress", "watermark"}

// PDFController контроллер PDF утилиты: разбирает аргументы,
// выполняет операцию и печатает JSON-отчет
type PDFController struct {
	compress  compressRunner
	watermark watermarkRunner
	out       io.Writer
}

// NewPDFController создает новый контроллер PDF утилиты
func NewPDFController(compress compressRunner, watermark watermarkRunner, out io.Writer) *PDFController {
	return &PDFController{
		compress:  compress,
		watermark: watermark,
		out:       out,
	}
}

// Run обрабатывает аргументы командной строки (без имени программы)
// и возвращает код выхода процесса
func (c *PDFController) Run(args []string) int {
	if len(args) < 1 {
		writeReport(c.out, &FailureReport{
			Error:      "No operation specified",
			Usage:      "pdftool <operation> <args...>",
			Operations: pdfOperations,
		})
		return 1
	}

	switch args[0] {
	case "compress":
		return c.runCompress(args[1:])
	case "watermark":
		return c.runWatermark(args[1:])
	default:
		writeReport(c.out, &FailureReport{
			Error:      fmt.Sprintf("Unknown operation: %s", args[0]),
			Operations: pdfOperations,
		})
		return 1
	}
}

func (c *PDFController) runCompress(args []string) int {
	if len(args) < 3 {
		writeReport(c.out, &FailureReport{
			Error:  "Usage: compress <input> <output> <level>",
			Levels: entities.CompressionLevels,
		})
		return 1
	}

	if err := c.compress.Probe(); err != nil {
		return c.dependencyFailure(err)
	}

	result, err := c.compress.Execute(args[0], args[1], args[2])
	if err != nil {
		writeReport(c.out, &FailureReport{Error: err.Error()})
		return 1
	}

	writeReport(c.out, &CompressReport{
		Success:          true,
		OriginalSize:     result.OriginalSize,
		CompressedSize:   result.CompressedSize,
		SavedBytes:       result.SavedBytes,
		CompressionRatio: result.FormatRatio(),
		Level:            result.Level,
	})
	return 0
}

func (c *PDFController) runWatermark(args []string) int {
	if len(args) < 3 {
		writeReport(c.out, &FailureReport{
			Error: "Usage: watermark <input> <output> <text> [options_json]",
		})
		return 1
	}

	var rawOptions string
	if len(args) > 3 {
		rawOptions = args[3]
	}

	opts, err := entities.ParseWatermarkOptions(rawOptions)
	if err != nil {
		writeReport(c.out, &FailureReport{Error: err.Error()})
		return 1
	}

	if err := c.watermark.Probe(); err != nil {
		return c.dependencyFailure(err)
	}

	result, err := c.watermark.Execute(args[0], args[1], args[2], opts)
	if err != nil {
		writeReport(c.out, &FailureReport{Error: err.Error()})
		return 1
	}

	writeReport(c.out, &WatermarkReport{
		Success:   true,
		Pages:     result.Pages,
		Watermark: result.Text,
		Position:  result.Position,
	})
	return 0
}

// dependencyFailure печатает отчет о недоступном бэкенде
// с подсказкой по устранению, операция не выполняется
func (c *PDFController) dependencyFailure(err error) int {
	writeReport(c.out, &FailureReport{
		Error:          err.Error(),
		InstallCommand: "задайте compression.algorithm: pdfcpu или unipdf_license_key в doctools.yaml",
	})
	return 1
}
