// Package main provides the entry point for the invoice-recon CLI application.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"fjacquet/invoice-recon/cmd/match"
	"fjacquet/invoice-recon/cmd/root"
	"fjacquet/invoice-recon/cmd/validate"
	"fjacquet/invoice-recon/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any command logs
	logLevel := configureLogLevelDirectly()

	// 3. Force this level on all loggers created so far
	logging.SetAllLogLevels(logLevel)

	// 4. Initialize root command and register subcommands
	root.Init()
	root.Cmd.AddCommand(match.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
}

// loadEnvSilently loads a .env file if present, without logging about it.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatal(err)
	}
}
