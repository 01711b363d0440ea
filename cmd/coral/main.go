// cmd/coral/main.go
package main

import (
	"fmt"
	"io"
	stlog "log"
	"os"

	"github.com/bethropolis/coral/internal/app"
	"github.com/bethropolis/coral/internal/config"
	"github.com/bethropolis/coral/internal/logger"
)

const version = "0.1.0"

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("coral %s\n", version)
		os.Exit(0)
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Printf("Warning: config load problem: %v", err)
	}

	var logOutput io.Writer
	if cfg.Logger.LogFilePath == "-" {
		logOutput = os.Stderr
	} else {
		logFile, err := os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Init(cfg.Logger, logOutput)

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}
	logger.Infof("Starting coral...")
	if filePath == "" {
		logger.Debugf("No file specified, starting empty.")
	}

	coralApp, err := app.NewApp(filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := coralApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("coral finished.")
}
