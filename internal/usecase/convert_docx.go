package usecases

import (
	"doctools/internal/domain/entities"
	"doctools/internal/domain/repositories"
)

// ConvertDocxUseCase сценарий преобразования DOCX в PDF
type ConvertDocxUseCase struct {
	reader   repositories.DocumentReader
	renderer repositories.DocumentRenderer
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewConvertDocxUseCase создает новый сценарий преобразования
func NewConvertDocxUseCase(
	reader repositories.DocumentReader,
	renderer repositories.DocumentRenderer,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *ConvertDocxUseCase {
	return &ConvertDocxUseCase{
		reader:   reader,
		renderer: renderer,
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// Probe проверяет готовность PDF движка
func (uc *ConvertDocxUseCase) Probe() error {
	return uc.renderer.Probe()
}

// Execute читает структуру DOCX и отрисовывает ее в новый PDF
func (uc *ConvertDocxUseCase) Execute(inputPath, outputPath string) (*entities.ConversionResult, error) {
	if uc.logger != nil {
		uc.logger.Info("преобразование %s -> %s", inputPath, outputPath)
	}

	doc, err := uc.reader.Read(inputPath)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Error("чтение DOCX не выполнено: %v", err)
		}
		return nil, err
	}

	if err := uc.renderer.Render(doc, outputPath); err != nil {
		if uc.logger != nil {
			uc.logger.Error("отрисовка PDF не выполнена: %v", err)
		}
		return nil, err
	}

	size, err := uc.fileRepo.FileSize(outputPath)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Success("преобразование завершено: %d абзацев, %d таблиц, %d байт",
			len(doc.Paragraphs), len(doc.Tables), size)
	}

	return &entities.ConversionResult{
		Paragraphs: len(doc.Paragraphs),
		Tables:     len(doc.Tables),
		OutputSize: size,
	}, nil
}
