package entities

// Config представляет конфигурацию приложения
type Config struct {
	Compression AppCompressionConfig `yaml:"compression"`
	Output      OutputConfig         `yaml:"output"`
}

// AppCompressionConfig настройки бэкенда сжатия
type AppCompressionConfig struct {
	Algorithm        string `yaml:"algorithm"` // pdfcpu или unipdf
	UniPDFLicenseKey string `yaml:"unipdf_license_key"`
}

// OutputConfig настройки логирования.
// Stdout зарезервирован под JSON-отчет, поэтому логи пишутся только в файл.
type OutputConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogToFile   bool   `yaml:"log_to_file"`
	LogFileName string `yaml:"log_file_name"`
}
