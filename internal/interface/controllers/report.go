package controllers

import (
	"encoding/json"
	"fmt"
	"io"
)

// Каждый запуск печатает ровно одну строку JSON в stdout;
// код выхода 0 только при success:true.

// CompressReport отчет об успешном сжатии
type CompressReport struct {
	Success          bool   `json:"success"`
	OriginalSize     int64  `json:"original_size"`
	CompressedSize   int64  `json:"compressed_size"`
	SavedBytes       int64  `json:"saved_bytes"`
	CompressionRatio string `json:"compression_ratio"`
	Level            string `json:"level"`
}

// WatermarkReport отчет об успешном наложении водяного знака
type WatermarkReport struct {
	Success   bool   `json:"success"`
	Pages     int    `json:"pages"`
	Watermark string `json:"watermark"`
	Position  string `json:"position"`
}

// ConvertReport отчет об успешном преобразовании DOCX в PDF
type ConvertReport struct {
	Success    bool   `json:"success"`
	Paragraphs int    `json:"paragraphs"`
	Tables     int    `json:"tables"`
	OutputSize int64  `json:"output_size"`
	Format     string `json:"format"`
}

// FailureReport отчет об ошибке; необязательные поля содержат
// подсказку по использованию или по устранению зависимости
type FailureReport struct {
	Success        bool     `json:"success"`
	Error          string   `json:"error"`
	Usage          string   `json:"usage,omitempty"`
	Operations     []string `json:"operations,omitempty"`
	Levels         []string `json:"levels,omitempty"`
	InstallCommand string   `json:"install_command,omitempty"`
	Installed      string   `json:"installed,omitempty"`
}

// writeReport сериализует отчет одной строкой в w
func writeReport(w io.Writer, report interface{}) {
	data, err := json.Marshal(report)
	if err != nil {
		// Отчеты состоят из простых типов, сюда попадать не должны
		fmt.Fprintf(w, `{"success":false,"error":%q}`+"\n", err.Error())
		return
	}
	fmt.Fprintln(w, string(data))
}
