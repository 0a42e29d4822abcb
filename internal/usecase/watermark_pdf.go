package usecases

import (
	"fmt"

	"doctools/internal/domain/entities"
	"doctools/internal/domain/repositories"
)

// WatermarkPDFUseCase сценарий наложения водяного знака на PDF
type WatermarkPDFUseCase struct {
	watermarker repositories.Watermarker
	logger      repositories.Logger
}

// NewWatermarkPDFUseCase создает новый сценарий наложения водяного знака
func NewWatermarkPDFUseCase(watermarker repositories.Watermarker, logger repositories.Logger) *WatermarkPDFUseCase {
	return &WatermarkPDFUseCase{
		watermarker: watermarker,
		logger:      logger,
	}
}

// Probe проверяет готовность бэкенда
func (uc *WatermarkPDFUseCase) Probe() error {
	return uc.watermarker.Probe()
}

// Execute накладывает текст на каждую страницу входного документа
func (uc *WatermarkPDFUseCase) Execute(inputPath, outputPath, text string, opts *entities.WatermarkOptions) (*entities.WatermarkResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка валидации параметров водяного знака: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("водяной знак %q, позиция %s: %s -> %s", text, opts.Position, inputPath, outputPath)
	}

	result, err := uc.watermarker.Apply(inputPath, outputPath, text, opts)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Error("водяной знак не наложен: %v", err)
		}
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Success("обработано страниц: %d", result.Pages)
	}

	return result, nil
}
