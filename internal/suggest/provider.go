// Package suggest asks a language model for filename suggestions. Everything
// a provider returns is untrusted text: callers must run Result.Suggestion
// through the sanitizer before letting it anywhere near a filesystem.
package suggest

import "context"

// TokenUsage mirrors the usage block of a chat completions response.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Request carries everything needed to ask for one filename suggestion.
type Request struct {
	// Instruction tells the model how to name the file.
	Instruction string
	// Content is an excerpt of the file, already clipped by the caller.
	Content string
	// Original is the file's current name, included for context only; the
	// extension authority stays with the caller.
	Original string
	// Examples holds newline-separated "old -> new" rename pairs from
	// earlier runs. May be empty.
	Examples string
	// Model names the chat model to query.
	Model string
}

// Result is one raw, unsanitized suggestion together with the usage the API
// reported and the exact prompt that was sent, kept for cost recounting.
type Result struct {
	Suggestion string
	Usage      TokenUsage
	Prompt     string
}

// Provider is implemented by every backend able to suggest filenames.
type Provider interface {
	// SuggestFilename performs one suggestion round trip.
	SuggestFilename(ctx context.Context, req *Request) (*Result, error)
	// Name returns the provider's identifier.
	Name() string
	// ValidateConfig checks that the provider is ready to use.
	ValidateConfig() error
}
