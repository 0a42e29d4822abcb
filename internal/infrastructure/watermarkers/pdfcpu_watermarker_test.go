package watermarkers

import (
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctools/internal/domain/entities"
)

// writeFixturePDF создает PDF с заданным числом страниц
func writeFixturePDF(t *testing.T, pages int) string {
	t.Helper()

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.Cell(0, 16, "Lorem ipsum dolor sit amet.")
	}

	path := filepath.Join(t.TempDir(), "input.pdf")
	require.NoError(t, pdf.OutputFileAndClose(path))
	return path
}

func TestPDFCPUWatermarker_AllPositions(t *testing.T) {
	input := writeFixturePDF(t, 3)

	positions := []string{
		entities.PositionDiagonal,
		entities.PositionCenter,
		entities.PositionTop,
		entities.PositionBottom,
	}

	for _, pos := range positions {
		t.Run(pos, func(t *testing.T) {
			opts := entities.DefaultWatermarkOptions()
			opts.Position = pos
			output := filepath.Join(t.TempDir(), "out.pdf")

			result, err := NewPDFCPUWatermarker().Apply(input, output, "DRAFT", opts)
			require.NoError(t, err)

			assert.Equal(t, 3, result.Pages)
			assert.Equal(t, "DRAFT", result.Text)
			assert.Equal(t, pos, result.Position)

			pages, err := api.PageCountFile(output)
			require.NoError(t, err)
			assert.Equal(t, 3, pages)
		})
	}
}

func TestPDFCPUWatermarker_CustomOptions(t *testing.T) {
	input := writeFixturePDF(t, 1)
	output := filepath.Join(t.TempDir(), "out.pdf")

	opts := entities.DefaultWatermarkOptions()
	opts.Opacity = 0.8
	opts.FontSize = 24
	opts.Rotation = 30
	opts.Color = entities.WatermarkColor{R: 1, G: 0, B: 0}

	result, err := NewPDFCPUWatermarker().Apply(input, output, "CONFIDENTIAL", opts)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pages)

	pages, err := api.PageCountFile(output)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestPDFCPUWatermarker_MissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.pdf")

	_, err := NewPDFCPUWatermarker().Apply(
		filepath.Join(t.TempDir(), "missing.pdf"),
		output,
		"DRAFT",
		entities.DefaultWatermarkOptions(),
	)

	assert.Error(t, err)
}
