package entities

import "encoding/json"

// Позиции водяного знака на странице
const (
	PositionDiagonal = "diagonal"
	PositionCenter   = "center"
	PositionTop      = "top"
	PositionBottom   = "bottom"
)

// WatermarkColor цвет водяного знака, компоненты RGB в диапазоне [0,1]
type WatermarkColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// WatermarkOptions параметры наложения водяного знака.
// Отсутствующие в JSON поля получают значения по умолчанию,
// неизвестные ключи игнорируются.
type WatermarkOptions struct {
	Opacity  float64        `json:"opacity"`
	FontSize int            `json:"fontSize"`
	Rotation float64        `json:"rotation"`
	Position string         `json:"position"`
	Color    WatermarkColor `json:"color"`
}

// DefaultWatermarkOptions возвращает параметры по умолчанию:
// полупрозрачный серый текст 48pt по диагонали под углом 45°
func DefaultWatermarkOptions() *WatermarkOptions {
	return &WatermarkOptions{
		Opacity:  0.3,
		FontSize: 48,
		Rotation: 45,
		Position: PositionDiagonal,
		Color:    WatermarkColor{R: 0.5, G: 0.5, B: 0.5},
	}
}

// ParseWatermarkOptions разбирает JSON с параметрами поверх значений
// по умолчанию. Пустая строка дает параметры по умолчанию.
func ParseWatermarkOptions(raw string) (*WatermarkOptions, error) {
	opts := DefaultWatermarkOptions()
	if raw == "" {
		return opts, nil
	}
	if err := json.Unmarshal([]byte(raw), opts); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate проверяет корректность параметров
func (o *WatermarkOptions) Validate() error {
	if o.Opacity < 0 || o.Opacity > 1 {
		return ErrInvalidOpacity
	}
	if o.FontSize <= 0 {
		return ErrInvalidFontSize
	}
	switch o.Position {
	case PositionDiagonal, PositionCenter, PositionTop, PositionBottom:
	default:
		return ErrInvalidPosition
	}
	for _, c := range []float64{o.Color.R, o.Color.G, o.Color.B} {
		if c < 0 || c > 1 {
			return ErrInvalidColor
		}
	}
	return nil
}

// WatermarkResult представляет результат наложения водяного знака
type WatermarkResult struct {
	Pages    int
	Text     string
	Position string
}
