package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ai-rename/internal/config"
	"ai-rename/internal/ui"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the OpenAI API key in the OS keychain",
}

var keySetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Store an API key in the OS keychain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetOpenAIAPIKey(args[0]); err != nil {
			return fmt.Errorf("failed to store API key: %w", err)
		}
		ui.Notef("API key stored in the keychain")
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key from the OS keychain",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.DeleteOpenAIAPIKey(); err != nil {
			return fmt.Errorf("failed to remove API key: %w", err)
		}
		ui.Notef("API key removed from the keychain")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyClearCmd)
	rootCmd.AddCommand(keyCmd)
}
