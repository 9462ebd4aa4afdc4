package main

import (
	"ai-rename/cmd"
	"ai-rename/internal/config"
)

func main() {
	// Load environment variables from .env files if present
	config.LoadEnvFiles()

	cmd.Execute()
}
