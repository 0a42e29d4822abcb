package compressors

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"doctools/internal/domain/entities"
)

// PDFCPUCompressor реализация компрессора с использованием PDFCPU
type PDFCPUCompressor struct{}

// NewPDFCPUCompressor создает новый PDFCPU компрессор
func NewPDFCPUCompressor() *PDFCPUCompressor {
	return &PDFCPUCompressor{}
}

// Probe проверяет готовность бэкенда. PDFCPU не требует лицензии
// и не имеет внешних зависимостей времени выполнения.
func (p *PDFCPUCompressor) Probe() error {
	return nil
}

// Compress пересериализует PDF с настройками записи для выбранного профиля
func (p *PDFCPUCompressor) Compress(inputPath, outputPath string, profile *entities.CompressionProfile) (*entities.CompressionResult, error) {
	originalInfo, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации об исходном файле: %w", err)
	}

	conf := writeConfiguration(profile)

	if err := api.OptimizeFile(inputPath, outputPath, conf); err != nil {
		return nil, fmt.Errorf("ошибка оптимизации PDFCPU: %w", err)
	}

	compressedInfo, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о сжатом файле: %w", err)
	}

	result := &entities.CompressionResult{
		Level:          profile.Level,
		OriginalSize:   originalInfo.Size(),
		CompressedSize: compressedInfo.Size(),
	}
	result.CalculateSavings()

	return result, nil
}

// writeConfiguration отображает профиль сжатия на настройки записи PDFCPU:
// object_stream_mode управляет object/xref streams, decode level и
// recompress_flate — пересжатием потоков, normalize_content —
// дедупликацией content streams.
func writeConfiguration(profile *entities.CompressionProfile) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.WriteObjectStream = profile.ObjectStreamMode > 0
	conf.WriteXRefStream = profile.ObjectStreamMode > 1
	conf.DecodeAllStreams = profile.StreamDecodeLevel >= 3
	conf.OptimizeDuplicateContentStreams = profile.NormalizeContent ||
		(profile.RecompressFlate && profile.StreamDecodeLevel >= 2)
	return conf
}
