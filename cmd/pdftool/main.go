package main

import (
	"fmt"
	"os"

	"doctools/internal/domain/repositories"
	"doctools/internal/infrastructure/compressors"
	"doctools/internal/infrastructure/config"
	"doctools/internal/infrastructure/logging"
	"doctools/internal/infrastructure/watermarkers"
	"doctools/internal/interface/controllers"
	usecases "doctools/internal/usecase"
)

const configPath = "doctools.yaml"

func main() {
	// Загрузка конфигурации; при ошибке работаем с настройками по умолчанию,
	// stdout при этом остается чистым для JSON-отчета
	configRepo := config.NewRepository()
	appConfig, err := configRepo.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "предупреждение: конфигурация не загружена: %v\n", err)
		appConfig = configRepo.Default()
	}

	fileLogger, err := logging.NewFileLogger(
		appConfig.Output.LogFileName,
		appConfig.Output.LogLevel,
		appConfig.Output.LogToFile,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "предупреждение: не удалось инициализировать логгер: %v\n", err)
	}
	var logger repositories.Logger
	if fileLogger != nil {
		logger = fileLogger
	}

	// Выбираем компрессор на основе конфигурации
	var compressor repositories.PDFCompressor
	switch appConfig.Compression.Algorithm {
	case "unipdf":
		compressor = compressors.NewUniPDFCompressor(appConfig.Compression.UniPDFLicenseKey)
	default:
		compressor = compressors.NewPDFCPUCompressor()
	}

	controller := controllers.NewPDFController(
		usecases.NewCompressPDFUseCase(compressor, logger),
		usecases.NewWatermarkPDFUseCase(watermarkers.NewPDFCPUWatermarker(), logger),
		os.Stdout,
	)

	code := controller.Run(os.Args[1:])
	if fileLogger != nil {
		fileLogger.Close()
	}
	os.Exit(code)
}
