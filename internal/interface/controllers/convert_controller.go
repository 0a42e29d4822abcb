package controllers

import (
	"fmt"
	"io"

	"doctools/internal/domain/entities"
	"doctools/internal/domain/repositories"
)

type convertRunner interface {
	Probe() error
	Execute(inputPath, outputPath string) (*entities.ConversionResult, error)
}

// ConvertController контроллер преобразователя DOCX в PDF
type ConvertController struct {
	convert  convertRunner
	fileRepo repositories.FileRepository
	out      io.Writer
}

// NewConvertController создает новый контроллер преобразователя
func NewConvertController(convert convertRunner, fileRepo repositories.FileRepository, out io.Writer) *ConvertController {
	return &ConvertController{
		convert:  convert,
		fileRepo: fileRepo,
		out:      out,
	}
}

// Run обрабатывает аргументы командной строки (без имени программы)
// и возвращает код выхода процесса
func (c *ConvertController) Run(args []string) int {
	if len(args) < 2 {
		writeReport(c.out, &FailureReport{
			Error: "Usage: docx2pdf <input.docx> <output.pdf>",
		})
		return 1
	}

	inputPath, outputPath := args[0], args[1]

	// Существование входного файла проверяется до начала преобразования
	if !c.fileRepo.FileExists(inputPath) {
		writeReport(c.out, &FailureReport{
			Error: fmt.Sprintf("Input file not found: %s", inputPath),
		})
		return 1
	}

	if err := c.convert.Probe(); err != nil {
		writeReport(c.out, &FailureReport{
			Error:     err.Error(),
			Installed: "требуются библиотеки go-docx и fpdf, собранные в бинарник",
		})
		return 1
	}

	result, err := c.convert.Execute(inputPath, outputPath)
	if err != nil {
		writeReport(c.out, &FailureReport{Error: err.Error()})
		return 1
	}

	writeReport(c.out, &ConvertReport{
		Success:    true,
		Paragraphs: result.Paragraphs,
		Tables:     result.Tables,
		OutputSize: result.OutputSize,
		Format:     "pdf",
	})
	return 0
}
