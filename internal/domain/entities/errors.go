package entities

import "errors"

// Доменные ошибки
var (
	ErrInvalidDecodeLevel      = errors.New("уровень декодирования потоков должен быть от 0 до 3")
	ErrInvalidObjectStreamMode = errors.New("режим object streams должен быть от 0 до 2")
	ErrInvalidOpacity          = errors.New("прозрачность должна быть от 0 до 1")
	ErrInvalidFontSize         = errors.New("размер шрифта должен быть больше 0")
	ErrInvalidPosition         = errors.New("позиция должна быть diagonal, center, top или bottom")
	ErrInvalidColor            = errors.New("компоненты цвета должны быть от 0 до 1")
	ErrFileNotFound            = errors.New("файл не найден")
)
