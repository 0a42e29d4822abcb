package entities_test

import (
	"testing"

	"doctools/internal/domain/entities"
)

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		expected entities.Alignment
	}{
		{"Center", "center", entities.AlignCenter},
		{"Right", "right", entities.AlignRight},
		{"End maps to right", "end", entities.AlignRight},
		{"Both maps to justify", "both", entities.AlignJustify},
		{"Distribute maps to justify", "distribute", entities.AlignJustify},
		{"Left", "left", entities.AlignLeft},
		{"Absent value falls back to left", "", entities.AlignLeft},
		{"Unknown value falls back to left", "zigzag", entities.AlignLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entities.ParseAlignment(tt.val); got != tt.expected {
				t.Errorf("ParseAlignment(%q) = %v, want %v", tt.val, got, tt.expected)
			}
		})
	}
}

func TestParagraph_Text(t *testing.T) {
	p := entities.Paragraph{Runs: []entities.Run{
		{Text: "Hello, ", Bold: true},
		{Text: "world"},
	}}

	if got := p.Text(); got != "Hello, world" {
		t.Errorf("Text() = %q, want %q", got, "Hello, world")
	}
}

func TestParagraph_IsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		p        entities.Paragraph
		expected bool
	}{
		{"No runs", entities.Paragraph{}, true},
		{"Whitespace only", entities.Paragraph{Runs: []entities.Run{{Text: "  \t "}}}, true},
		{"Has text", entities.Paragraph{Runs: []entities.Run{{Text: "x"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsEmpty(); got != tt.expected {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParagraph_Uniform(t *testing.T) {
	tests := []struct {
		name     string
		p        entities.Paragraph
		expected bool
	}{
		{"No runs", entities.Paragraph{}, true},
		{
			"Same formatting",
			entities.Paragraph{Runs: []entities.Run{
				{Text: "a", Bold: true},
				{Text: "b", Bold: true},
			}},
			true,
		},
		{
			"Mixed formatting",
			entities.Paragraph{Runs: []entities.Run{
				{Text: "a", Bold: true},
				{Text: "b", Italic: true},
			}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Uniform(); got != tt.expected {
				t.Errorf("Uniform() = %v, want %v", got, tt.expected)
			}
		})
	}
}
