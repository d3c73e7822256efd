package main

import (
	"os"

	"hashlab/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; plain environment variables work the same
	_ = godotenv.Load()

	if err := Execute(); err != nil {
		logger.Errorf("Command failed: %v", err)
		os.Exit(1)
	}
}
