package pdfrender

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doctools/internal/domain/entities"
)

func TestBuildMarkup(t *testing.T) {
	tests := []struct {
		name     string
		p        entities.Paragraph
		expected string
	}{
		{
			name:     "Plain run",
			p:        entities.Paragraph{Runs: []entities.Run{{Text: "hello"}}},
			expected: "hello",
		},
		{
			name:     "Bold outermost, then italic, then underline",
			p:        entities.Paragraph{Runs: []entities.Run{{Text: "x", Bold: true, Italic: true, Underline: true}}},
			expected: "<b><i><u>x</u></i></b>",
		},
		{
			name: "Runs are marked up independently",
			p: entities.Paragraph{Runs: []entities.Run{
				{Text: "a", Bold: true},
				{Text: "b"},
				{Text: "c", Underline: true},
			}},
			expected: "<b>a</b>b<u>c</u>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildMarkup(tt.p))
		})
	}
}

func TestParseMarkup(t *testing.T) {
	segments, err := ParseMarkup("<b>a</b>b<i><u>c</u></i>")
	assert.NoError(t, err)
	assert.Equal(t, []Segment{
		{Text: "a", Bold: true},
		{Text: "b"},
		{Text: "c", Italic: true, Underline: true},
	}, segments)
}

func TestParseMarkup_LiteralAngleBracket(t *testing.T) {
	// '<' вне тегов разметки остается текстом
	segments, err := ParseMarkup("a<b - неравенство")
	assert.NoError(t, err)
	assert.Len(t, segments, 1)
	assert.Equal(t, "a<b - неравенство", segments[0].Text)
}

func TestParseMarkup_Unbalanced(t *testing.T) {
	_, err := ParseMarkup("</b>хвост")
	assert.Error(t, err)

	_, err = ParseMarkup("<b>незакрыто")
	assert.Error(t, err)
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "abc", StripMarkup("<b>a</b><i>b</i><u>c</u>"))
	assert.Equal(t, "plain", StripMarkup("plain"))
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected styleTier
	}{
		{"Heading 1 display name", "Heading 1", tierHeading1},
		{"Heading1 style id", "Heading1", tierHeading1},
		{"Title", "Title", tierHeading1},
		{"Heading 2", "Heading 2", tierHeading2},
		{"Heading 3", "Heading3", tierHeading3},
		{"Normal", "Normal", tierNormal},
		{"Empty", "", tierNormal},
		{"Case sensitive: lowercase does not match", "heading 1", tierNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, styleFor(tt.style))
		})
	}
}
