package compressors

import (
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctools/internal/domain/entities"
)

// writeFixturePDF создает многостраничный PDF с наполнением,
// достаточным для пересжатия потоков содержимого
func writeFixturePDF(t *testing.T, pages int) string {
	t.Helper()

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		for j := 0; j < 40; j++ {
			pdf.Cell(0, 16, "Lorem ipsum dolor sit amet, consectetur adipiscing elit.")
			pdf.Ln(16)
		}
	}

	path := filepath.Join(t.TempDir(), "input.pdf")
	require.NoError(t, pdf.OutputFileAndClose(path))
	return path
}

func TestPDFCPUCompressor_AllLevels(t *testing.T) {
	input := writeFixturePDF(t, 3)

	for _, level := range entities.CompressionLevels {
		t.Run(level, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "out.pdf")

			result, err := NewPDFCPUCompressor().Compress(input, output, entities.NewCompressionProfile(level))
			require.NoError(t, err)

			assert.Equal(t, level, result.Level)
			assert.Greater(t, result.OriginalSize, int64(0))
			assert.Greater(t, result.CompressedSize, int64(0))
			assert.Equal(t, result.OriginalSize-result.CompressedSize, result.SavedBytes)

			pages, err := api.PageCountFile(output)
			require.NoError(t, err)
			assert.Equal(t, 3, pages)
		})
	}
}

func TestPDFCPUCompressor_UnknownLevelBehavesAsMedium(t *testing.T) {
	input := writeFixturePDF(t, 1)

	unknownOut := filepath.Join(t.TempDir(), "unknown.pdf")
	unknown, err := NewPDFCPUCompressor().Compress(input, unknownOut, entities.NewCompressionProfile("turbo"))
	require.NoError(t, err)

	mediumOut := filepath.Join(t.TempDir(), "medium.pdf")
	medium, err := NewPDFCPUCompressor().Compress(input, mediumOut, entities.NewCompressionProfile(entities.LevelMedium))
	require.NoError(t, err)

	assert.Equal(t, entities.LevelMedium, unknown.Level)
	assert.Equal(t, medium.CompressedSize, unknown.CompressedSize)
}

func TestPDFCPUCompressor_MissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.pdf")

	_, err := NewPDFCPUCompressor().Compress(
		filepath.Join(t.TempDir(), "missing.pdf"),
		output,
		entities.NewCompressionProfile(entities.LevelLow),
	)

	assert.Error(t, err)
}
