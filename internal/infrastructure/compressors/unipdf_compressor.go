package compressors

import (
	"fmt"
	"os"

	"github.com/unidoc/unipdf/v3/common"
	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/model/optimize"

	"doctools/internal/domain/entities"
)

// UniPDFCompressor реализация компрессора с использованием UniPDF.
// Требует лицензионный ключ (конфигурация или UNIDOC_LICENSE_API_KEY).
type UniPDFCompressor struct {
	licenseKey string
}

// NewUniPDFCompressor создает новый UniPDF компрессор
func NewUniPDFCompressor(licenseKey string) *UniPDFCompressor {
	return &UniPDFCompressor{licenseKey: licenseKey}
}

// Probe проверяет наличие лицензионного ключа до выполнения операции
func (u *UniPDFCompressor) Probe() error {
	if u.resolveLicenseKey() == "" {
		return fmt.Errorf("UniPDF требует лицензионный ключ. Установите его в конфигурации или в переменной UNIDOC_LICENSE_API_KEY. Используйте алгоритм 'pdfcpu' для бесплатной обработки или получите ключ на https://cloud.unidoc.io")
	}
	return nil
}

func (u *UniPDFCompressor) resolveLicenseKey() string {
	if u.licenseKey != "" {
		return u.licenseKey
	}
	return os.Getenv("UNIDOC_LICENSE_API_KEY")
}

// Compress сжимает PDF файл используя UniPDF библиотеку
func (u *UniPDFCompressor) Compress(inputPath, outputPath string, profile *entities.CompressionProfile) (*entities.CompressionResult, error) {
	// Stdout зарезервирован под JSON-отчет, консольный логгер недопустим
	common.SetLogger(common.DummyLogger{})

	if err := u.Probe(); err != nil {
		return nil, err
	}
	os.Setenv("UNIDOC_LICENSE_API_KEY", u.resolveLicenseKey())

	originalInfo, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации об исходном файле: %w", err)
	}

	pdfReader, file, err := model.NewPdfReaderFromFile(inputPath, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	pdfWriter := model.NewPdfWriter()
	pdfWriter.SetOptimizer(optimize.New(optimizerOptions(profile)))

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения количества страниц: %w", err)
	}

	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("ошибка получения страницы %d: %w", i, err)
		}
		if err := pdfWriter.AddPage(page); err != nil {
			return nil, fmt.Errorf("ошибка добавления страницы %d: %w", i, err)
		}
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания выходного файла: %w", err)
	}
	defer outputFile.Close()

	if err := pdfWriter.Write(outputFile); err != nil {
		return nil, fmt.Errorf("ошибка записи файла: %w", err)
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

// optimizerOptions отображает профиль сжатия на настройки оптимизатора UniPDF
func optimizerOptions(profile *entities.CompressionProfile) optimize.Options {
	return optimize.Options{
		CombineDuplicateDirectObjects:   true,
		CombineIdenticalIndirectObjects: true,
		CombineDuplicateStreams:         profile.RecompressFlate,
		CompressStreams:                 profile.CompressStreams,
		UseObjectStreams:                profile.ObjectStreamMode > 0,
		CleanContentstream:              profile.NormalizeContent,
	}
}
