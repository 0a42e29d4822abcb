package usecases

import (
	"fmt"

	"doctools/internal/domain/entities"
	"doctools/internal/domain/repositories"
)

// CompressPDFUseCase сценарий сжатия одного PDF файла
type CompressPDFUseCase struct {
	compressor repositories.PDFCompressor
	logger     repositories.Logger
}

// NewCompressPDFUseCase создает новый сценарий сжатия PDF
func NewCompressPDFUseCase(compressor repositories.PDFCompressor, logger repositories.Logger) *CompressPDFUseCase {
	return &CompressPDFUseCase{
		compressor: compressor,
		logger:     logger,
	}
}

// Probe проверяет готовность бэкенда сжатия
func (uc *CompressPDFUseCase) Probe() error {
	return uc.compressor.Probe()
}

// Execute выполняет сжатие PDF файла. Неизвестный уровень молча
// заменяется на medium; отсутствие или повреждение входного файла
// обнаруживается самой библиотекой.
func (uc *CompressPDFUseCase) Execute(inputPath, outputPath, level string) (*entities.CompressionResult, error) {
	profile := entities.NewCompressionProfile(level)
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка валидации профиля сжатия: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("сжатие %s -> %s, уровень %s", inputPath, outputPath, profile.Level)
	}

	result, err := uc.compressor.Compress(inputPath, outputPath, profile)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Error("сжатие не выполнено: %v", err)
		}
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Success("сжатие завершено: %d -> %d байт (%s)",
			result.OriginalSize, result.CompressedSize, result.FormatRatio())
	}

	return result, nil
}
