package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"doctools/internal/domain/entities"
)

// Repository реализация репозитория конфигурации
type Repository struct{}

// NewRepository создает новый репозиторий конфигурации
func NewRepository() *Repository {
	return &Repository{}
}

// Load загружает конфигурацию из файла.
// Отсутствие файла не ошибка: возвращается конфигурация по умолчанию.
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return r.Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config entities.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config.Compression.Algorithm == "" {
		config.Compression.Algorithm = "pdfcpu"
	}

	return &config, nil
}

// Save сохраняет конфигурацию в файл
func (r *Repository) Save(configPath string, config *entities.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Default возвращает конфигурацию по умолчанию
func (r *Repository) Default() *entities.Config {
	return &entities.Config{
		Compression: entities.AppCompressionConfig{
			Algorithm: "pdfcpu",
		},
		Output: entities.OutputConfig{
			LogLevel:    "info",
			LogToFile:   false,
			LogFileName: "doctools.log",
		},
	}
}
