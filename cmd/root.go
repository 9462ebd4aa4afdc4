// Package cmd wires the CLI: flag parsing, configuration, the suggestion
// provider and the sanitizer. The final filename is the only thing written
// to stdout; every diagnostic goes to stderr.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"ai-rename/internal/config"
	"ai-rename/internal/pricing"
	"ai-rename/internal/sanitize"
	"ai-rename/internal/suggest"
	"ai-rename/internal/ui"
)

var (
	instruction      string
	content          string
	original         string
	examples         string
	model            string
	maxContentTokens int
	retries          int
	plain            bool
)

var rootCmd = &cobra.Command{
	Use:   "ai-rename",
	Short: "Suggest a safe new filename using an OpenAI model",
	Long: `ai-rename asks an OpenAI chat model for a descriptive filename based on a
naming instruction and an excerpt of the file's content, sanitizes the
suggestion into a filesystem-safe name, and prints it to stdout.

Token usage and cost estimates go to stderr, so the printed filename can be
captured directly:

  mv scan001.pdf "$(ai-rename --instruction 'topic and date' \
      --original scan001.pdf --content "$(pdftotext scan001.pdf -)")"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if plain {
			ui.Plain()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if model != "" {
			cfg.Model = model
		}

		apiKey, err := config.GetAPIKey()
		if err != nil {
			return err
		}

		provider := suggest.WithRetry(suggest.NewOpenAIProvider(apiKey, cfg.Timeout), retries)
		return runRename(cmd, renameOptions{
			instruction:      instruction,
			content:          content,
			original:         original,
			examples:         examples,
			model:            cfg.Model,
			maxContentTokens: maxContentTokens,
		}, provider, pricing.Default())
	},
}

func init() {
	rootCmd.Flags().StringVar(&instruction, "instruction", "", "Naming instruction for the model (required)")
	rootCmd.Flags().StringVar(&content, "content", "", "Excerpt of the file's content (required)")
	rootCmd.Flags().StringVar(&original, "original", "", "Current filename; its extension is kept on the result (required)")
	rootCmd.Flags().StringVar(&examples, "examples", "", "Previous 'old -> new' rename pairs, one per line")
	rootCmd.Flags().StringVar(&model, "model", "", "Chat model to query (default "+config.DefaultModel+")")
	rootCmd.Flags().IntVar(&maxContentTokens, "max-content-tokens", suggest.DefaultMaxContentTokens, "Clip the content excerpt to this many tokens (0 disables)")
	rootCmd.Flags().IntVar(&retries, "retries", suggest.DefaultMaxAttempts, "Total attempts for transient API failures")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable styled stderr output")
	rootCmd.MarkFlagRequired("instruction")
	rootCmd.MarkFlagRequired("content")
	rootCmd.MarkFlagRequired("original")
}

// renameOptions carries one fully resolved invocation.
type renameOptions struct {
	instruction      string
	content          string
	original         string
	examples         string
	model            string
	maxContentTokens int
}

// runRename drives one suggestion round trip: clip the excerpt, query the
// provider, report usage and cost, sanitize, and print the final filename.
func runRename(cmd *cobra.Command, opts renameOptions, provider suggest.Provider, estimators pricing.Chain) error {
	excerpt, clipped := suggest.ClipContent(opts.content, opts.model, opts.maxContentTokens)
	if clipped {
		ui.Clipped(opts.maxContentTokens)
	}

	res, err := provider.SuggestFilename(cmd.Context(), &suggest.Request{
		Instruction: opts.instruction,
		Content:     excerpt,
		Original:    opts.original,
		Examples:    opts.examples,
		Model:       opts.model,
	})
	if err != nil {
		return fmt.Errorf("filename suggestion failed: %w", err)
	}

	ui.Usage(res.Usage)
	breakdown, err := estimators.Estimate(opts.model, res.Usage.PromptTokens, res.Usage.CompletionTokens, res.Prompt, res.Suggestion)
	if err != nil {
		// Cost reporting is advisory and must never block the rename.
		log.Printf("cmd: cost estimate unavailable: %v", err)
	} else {
		ui.Cost(breakdown)
	}

	ext := sanitize.ExtensionOrDefault(opts.original)
	final := sanitize.Compose(res.Suggestion, ext)
	if final != res.Suggestion {
		ui.Sanitized(res.Suggestion, final)
	}

	fmt.Fprintln(cmd.OutOrStdout(), final)
	return nil
}

// Execute runs the root command. Errors are reported on stderr and exit
// non-zero; stdout stays reserved for the filename.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		os.Exit(1)
	}
}
