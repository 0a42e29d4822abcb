package main

import (
	"fmt"
	"os"

	"doctools/internal/domain/repositories"
	"doctools/internal/infrastructure/config"
	"doctools/internal/infrastructure/docxreader"
	"doctools/internal/infrastructure/logging"
	"doctools/internal/infrastructure/pdfrender"
	infraRepos "doctools/internal/infrastructure/repositories"
	"doctools/internal/interface/controllers"
	usecases "doctools/internal/usecase"
)

const configPath = "doctools.yaml"

func main() {
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

	fileRepo := infraRepos.NewFileSystemRepository()

	controller := controllers.NewConvertController(
		usecases.NewConvertDocxUseCase(
			docxreader.NewReader(),
			pdfrender.NewRenderer(logger),
			fileRepo,
			logger,
		),
		fileRepo,
		os.Stdout,
	)

	code := controller.Run(os.Args[1:])
	if fileLogger != nil {
		fileLogger.Close()
	}
	os.Exit(code)
}
