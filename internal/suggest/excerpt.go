package suggest

import (
	"log"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultMaxContentTokens bounds the content excerpt sent to the model.
const DefaultMaxContentTokens = 6000

// runesPerTokenEstimate approximates text per token when no tokenizer is
// available. Three runes per token is conservative for prose.
const runesPerTokenEstimate = 3

// ClipContent bounds text to maxTokens tokens of the model's encoding and
// reports whether anything was cut. When the tokenizer cannot be loaded it
// falls back to a rune-count estimate instead of failing: the excerpt is
// advisory input, never worth aborting the run over.
func ClipContent(text, model string, maxTokens int) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || maxTokens <= 0 {
		return trimmed, false
	}

	enc, err := clipEncoding(model)
	if err != nil {
		log.Printf("suggest: tokenizer unavailable (%v), clipping by rune estimate", err)
		runes := []rune(trimmed)
		if len(runes) <= maxTokens*runesPerTokenEstimate {
			return trimmed, false
		}
		return string(runes[:maxTokens*runesPerTokenEstimate]), true
	}

	ids := enc.Encode(trimmed, nil, nil)
	if len(ids) <= maxTokens {
		return trimmed, false
	}
	clipped := enc.Decode(ids[:maxTokens])
	// A token boundary can fall inside a multi-byte character.
	return strings.ToValidUTF8(clipped, ""), true
}

// clipEncoding resolves the tokenizer for model, falling back to cl100k_base
// for names tiktoken does not know.
func clipEncoding(model string) (*tiktoken.Tiktoken, error) {
	if enc, err := tiktoken.EncodingForModel(model); err == nil {
		return enc, nil
	}
	return tiktoken.GetEncoding("cl100k_base")
}
