package pdfrender

import (
	"errors"
	"strings"

	"doctools/internal/domain/entities"
)

// Ошибки разбора встроенной разметки
var (
	errUnbalancedTag = errors.New("несбалансированный тег разметки")
)

// Segment фрагмент текста с разрешенным форматированием
type Segment struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
}

// BuildMarkup собирает строку с встроенной разметкой из фрагментов абзаца.
// Порядок вложенности: bold снаружи, затем italic, затем underline;
// каждый фрагмент размечается независимо, фрагменты не объединяются.
func BuildMarkup(p entities.Paragraph) string {
	var sb strings.Builder
	for _, r := range p.Runs {
		text := r.Text
		if r.Underline {
			text = "<u>" + text + "</u>"
		}
		if r.Italic {
			text = "<i>" + text + "</i>"
		}
		if r.Bold {
			text = "<b>" + text + "</b>"
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// ParseMarkup разбирает строку с разметкой на фрагменты. Неизвестные
// последовательности с '<' остаются текстом; закрывающий тег без парного
// открывающего или незакрытый тег дают ошибку.
func ParseMarkup(s string) ([]Segment, error) {
	var (
		segments             []Segment
		cur                  strings.Builder
		bold, italic, undrln int
	)

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		segments = append(segments, Segment{
			Text:      cur.String(),
			Bold:      bold > 0,
			Italic:    italic > 0,
			Underline: undrln > 0,
		})
		cur.Reset()
	}

	counter := func(tag byte) *int {
		switch tag {
		case 'b':
			return &bold
		case 'i':
			return &italic
		default:
			return &undrln
		}
	}

	for i := 0; i < len(s); {
		if s[i] != '<' {
			cur.WriteByte(s[i])
			i++
			continue
		}

		switch {
		case i+2 < len(s) && s[i+2] == '>' && isMarkupTag(s[i+1]):
			flush()
			*counter(s[i+1])++
			i += 3
		case i+3 < len(s) && s[i+1] == '/' && s[i+3] == '>' && isMarkupTag(s[i+2]):
			flush()
			c := counter(s[i+2])
			if *c == 0 {
				return nil, errUnbalancedTag
			}
			*c--
			i += 4
		default:
			// Не тег разметки, оставляем как текст
			cur.WriteByte(s[i])
			i++
		}
	}

	if bold != 0 || italic != 0 || undrln != 0 {
		return nil, errUnbalancedTag
	}

	flush()
	return segments, nil
}

func isMarkupTag(b byte) bool {
	return b == 'b' || b == 'i' || b == 'u'
}

// StripMarkup удаляет все теги разметки, оставляя чистый текст
func StripMarkup(s string) string {
	return strings.NewReplacer(
		"<b>", "", "</b>", "",
		"<i>", "", "</i>", "",
		"<u>", "", "</u>", "",
	).Replace(s)
}
