package pricing

import (
	"errors"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TokenizerEstimator recounts the prompt and completion with the model's own
// tokenizer and prices those counts, so the estimate reflects the text that
// was actually exchanged instead of trusting the reported totals. It fails
// when the texts are missing or the encoding cannot be loaded, handing over
// to the next estimator in the chain.
type TokenizerEstimator struct{}

// NewTokenizerEstimator returns the tokenizer-backed estimator.
func NewTokenizerEstimator() *TokenizerEstimator {
	return &TokenizerEstimator{}
}

// Source identifies tokenizer-based estimates in reports.
func (e *TokenizerEstimator) Source() string {
	return "tokenizer"
}

// Estimate recounts both texts and prices the result. The reported token
// counts are ignored.
func (e *TokenizerEstimator) Estimate(model string, _, _ int, promptText, completionText string) (*Breakdown, error) {
	if promptText == "" || completionText == "" {
		return nil, errors.New("prompt and completion text required for recounting")
	}
	enc, err := encodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("tokenizer for %q unavailable: %w", model, err)
	}
	promptTokens := len(enc.Encode(promptText, nil, nil))
	completionTokens := len(enc.Encode(completionText, nil, nil))
	return priceTokens(model, promptTokens, completionTokens, e.Source()), nil
}

// encodingForModel resolves the tokenizer for model, falling back to
// cl100k_base for names tiktoken does not know.
func encodingForModel(model string) (*tiktoken.Tiktoken, error) {
	if enc, err := tiktoken.EncodingForModel(model); err == nil {
		return enc, nil
	}
	return tiktoken.GetEncoding("cl100k_base")
}
