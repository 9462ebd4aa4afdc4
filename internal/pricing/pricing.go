// Package pricing estimates the dollar cost of chat model invocations from
// token counts. Estimates are advisory: a failed estimate must never block
// the operation being priced, so callers run a Chain that degrades to the
// static rate table.
package pricing

import (
	"errors"
	"fmt"
	"log"
)

// Breakdown is one priced invocation. Rates are USD per 1K tokens, costs are
// USD. Source names the estimator that produced the figures.
type Breakdown struct {
	InputRate  float64
	OutputRate float64
	InputCost  float64
	OutputCost float64
	TotalCost  float64
	Source     string
}

// Estimator prices a single model invocation. promptText and completionText
// carry the exact texts sent and received; estimators that need them must
// fail when they are empty rather than guess.
type Estimator interface {
	Estimate(model string, promptTokens, completionTokens int, promptText, completionText string) (*Breakdown, error)
	Source() string
}

// Chain tries estimators in order and returns the first success. Earlier
// failures are logged, never propagated; only a fully exhausted chain errors.
type Chain []Estimator

// Estimate runs the chain.
func (c Chain) Estimate(model string, promptTokens, completionTokens int, promptText, completionText string) (*Breakdown, error) {
	var lastErr error
	for _, e := range c {
		b, err := e.Estimate(model, promptTokens, completionTokens, promptText, completionText)
		if err == nil {
			return b, nil
		}
		lastErr = err
		log.Printf("pricing: %s estimator unavailable: %v", e.Source(), err)
	}
	if lastErr == nil {
		lastErr = errors.New("no estimators configured")
	}
	return nil, fmt.Errorf("all pricing estimators failed: %w", lastErr)
}

// Default returns the standard chain: exact recounting with the model's
// tokenizer first, the static rate table as the net that cannot fail.
func Default() Chain {
	return Chain{NewTokenizerEstimator(), NewTableEstimator()}
}
