package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
)

const (
	// OpenAI keychain configuration
	openAIKeychainService = "AIRename_OpenAI"
	openAIKeychainUser    = "api_token"
)

// DefaultModel is the chat model the prompt and pricing table were tuned
// against.
const DefaultModel = "gpt-4o-mini"

const defaultTimeoutSeconds = 60

// Config holds the runtime settings for the suggestion service.
type Config struct {
	// Model is the chat model to query.
	Model string

	// Timeout bounds each API request.
	Timeout time.Duration
}

// LoadEnvFiles loads environment variables from .env files in the current
// directory and the user's home directory.
func LoadEnvFiles() {
	godotenv.Load() // Load .env from current directory

	homeDir, err := os.UserHomeDir()
	if err == nil {
		godotenv.Load(filepath.Join(homeDir, ".env")) // Load .env from home directory
	}
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		Model:   DefaultModel,
		Timeout: defaultTimeoutSeconds * time.Second,
	}

	if model := os.Getenv("AI_RENAME_MODEL"); model != "" {
		config.Model = model
	}

	if raw := os.Getenv("OPENAI_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			config.Timeout = time.Duration(seconds) * time.Second
		}
	}

	return config, nil
}

// GetAPIKey retrieves the OpenAI API key.
func GetAPIKey() (string, error) {
	apiKey := getOpenAIAPIKey()
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not found in environment variables or keychain. Set the environment variable, add it to a .env file, or store it with 'ai-rename key set'")
	}
	return apiKey, nil
}

// getOpenAIAPIKey retrieves the OpenAI API key from environment or keychain.
func getOpenAIAPIKey() string {
	// Check environment variable first
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		return apiKey
	}

	// Fall back to keychain
	apiKey, err := keyring.Get(openAIKeychainService, openAIKeychainUser)
	if err == nil && apiKey != "" {
		return apiKey
	}

	// Log warning but don't block
	if err != nil && err != keyring.ErrNotFound {
		fmt.Fprintf(os.Stderr, "Warning: OpenAI keychain access error: %v\n", err)
	}

	return ""
}

// SetOpenAIAPIKey stores the OpenAI API key in the keychain.
func SetOpenAIAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("API key must not be empty")
	}
	return keyring.Set(openAIKeychainService, openAIKeychainUser, apiKey)
}

// DeleteOpenAIAPIKey removes the stored OpenAI API key from the keychain.
// Deleting a key that was never stored is not an error.
func DeleteOpenAIAPIKey() error {
	err := keyring.Delete(openAIKeychainService, openAIKeychainUser)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}
