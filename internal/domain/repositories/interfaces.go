package repositories

import (
	"doctools/internal/domain/entities"
)

// PDFCompressor интерфейс для сжатия PDF файлов
type PDFCompressor interface {
	// Probe проверяет готовность бэкенда до выполнения операции
	Probe() error
	Compress(inputPath, outputPath string, profile *entities.CompressionProfile) (*entities.CompressionResult, error)
}

// Watermarker интерфейс для наложения текстового водяного знака
type Watermarker interface {
	Probe() error
	Apply(inputPath, outputPath, text string, opts *entities.WatermarkOptions) (*entities.WatermarkResult, error)
}

// DocumentReader интерфейс для чтения структуры DOCX документа
type DocumentReader interface {
	Read(path string) (*entities.Document, error)
}

// DocumentRenderer интерфейс для отрисовки документа в PDF
type DocumentRenderer interface {
	Probe() error
	Render(doc *entities.Document, outputPath string) error
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	FileExists(path string) bool
	FileSize(path string) (int64, error)
}

// AppConfigRepository интерфейс для работы с конфигурацией приложения
type AppConfigRepository interface {
	Load(configPath string) (*entities.Config, error)
	Save(configPath string, config *entities.Config) error
}
