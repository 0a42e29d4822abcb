package entities

import "fmt"

// Именованные уровни сжатия, упорядоченные по агрессивности
const (
	LevelLow     = "low"
	LevelMedium  = "medium"
	LevelHigh    = "high"
	LevelExtreme = "extreme"
)

// CompressionLevels список известных уровней в порядке возрастания агрессивности
var CompressionLevels = []string{LevelLow, LevelMedium, LevelHigh, LevelExtreme}

// CompressionProfile представляет фиксированный набор настроек записи PDF
// для именованного уровня сжатия
type CompressionProfile struct {
	Level             string // Именованный уровень (low/medium/high/extreme)
	CompressStreams   bool   // Сжимать потоки данных
	StreamDecodeLevel int    // Агрессивность декодирования потоков (0-3)
	ObjectStreamMode  int    // Режим группировки объектов в object streams (0-2)
	RecompressFlate   bool   // Пересжимать flate-потоки
	NormalizeContent  bool   // Нормализовать content streams (только extreme)
}

// NewCompressionProfile создает профиль сжатия по именованному уровню.
// Неизвестный уровень молча заменяется на medium.
func NewCompressionProfile(level string) *CompressionProfile {
	switch level {
	case LevelLow:
		return &CompressionProfile{
			Level:             LevelLow,
			CompressStreams:   true,
			StreamDecodeLevel: 0,
			ObjectStreamMode:  0,
			RecompressFlate:   false,
		}
	case LevelHigh:
		return &CompressionProfile{
			Level:             LevelHigh,
			CompressStreams:   true,
			StreamDecodeLevel: 2,
			ObjectStreamMode:  2,
			RecompressFlate:   true,
		}
	case LevelExtreme:
		return &CompressionProfile{
			Level:             LevelExtreme,
			CompressStreams:   true,
			StreamDecodeLevel: 3,
			ObjectStreamMode:  2,
			RecompressFlate:   true,
			NormalizeContent:  true,
		}
	default:
		return &CompressionProfile{
			Level:             LevelMedium,
			CompressStreams:   true,
			StreamDecodeLevel: 1,
			ObjectStreamMode:  1,
			RecompressFlate:   true,
		}
	}
}

// Validate проверяет корректность профиля
func (p *CompressionProfile) Validate() error {
	if p.StreamDecodeLevel < 0 || p.StreamDecodeLevel > 3 {
		return ErrInvalidDecodeLevel
	}
	if p.ObjectStreamMode < 0 || p.ObjectStreamMode > 2 {
		return ErrInvalidObjectStreamMode
	}
	return nil
}

// CompressionResult представляет результат сжатия
type CompressionResult struct {
	Level            string
	OriginalSize     int64
	CompressedSize   int64
	SavedBytes       int64
	CompressionRatio float64
}

// CalculateSavings вычисляет сэкономленные байты и коэффициент сжатия.
// Нулевой исходный размер дает коэффициент 0 (защита от деления на ноль).
func (cr *CompressionResult) CalculateSavings() {
	cr.SavedBytes = cr.OriginalSize - cr.CompressedSize
	if cr.OriginalSize > 0 {
		cr.CompressionRatio = float64(cr.SavedBytes) / float64(cr.OriginalSize) * 100
	} else {
		cr.CompressionRatio = 0
	}
}

// FormatRatio возвращает коэффициент сжатия в процентах с двумя знаками
func (cr *CompressionResult) FormatRatio() string {
	return fmt.Sprintf("%.2f%%", cr.CompressionRatio)
}
