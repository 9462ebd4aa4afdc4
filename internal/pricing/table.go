package pricing

// rate holds USD prices per 1K input and output tokens.
type rate struct {
	input  float64
	output float64
}

// rateTable mirrors the published chat completion prices this tool was tuned
// against. Models missing here are priced as fallbackModel so cost reporting
// can never block a rename.
var rateTable = map[string]rate{
	"gpt-3.5-turbo": {input: 0.0015, output: 0.002},
	"gpt-4":         {input: 0.03, output: 0.06},
	"gpt-4-turbo":   {input: 0.01, output: 0.03},
	"gpt-4o":        {input: 0.005, output: 0.015},
	"gpt-4o-mini":   {input: 0.00015, output: 0.0006},
}

const fallbackModel = "gpt-4o-mini"

func rateFor(model string) rate {
	if r, ok := rateTable[model]; ok {
		return r
	}
	return rateTable[fallbackModel]
}

// TableEstimator prices the token counts reported by the API against the
// static rate table. It never fails, which makes it the chain's last link.
type TableEstimator struct{}

// NewTableEstimator returns the static table estimator.
func NewTableEstimator() *TableEstimator {
	return &TableEstimator{}
}

// Source identifies table-based estimates in reports.
func (e *TableEstimator) Source() string {
	return "static-table"
}

// Estimate prices the reported counts. The prompt and completion texts are
// ignored.
func (e *TableEstimator) Estimate(model string, promptTokens, completionTokens int, _, _ string) (*Breakdown, error) {
	return priceTokens(model, promptTokens, completionTokens, e.Source()), nil
}

// priceTokens applies the table rate for model to the given counts.
func priceTokens(model string, promptTokens, completionTokens int, source string) *Breakdown {
	r := rateFor(model)
	b := &Breakdown{
		InputRate:  r.input,
		OutputRate: r.output,
		InputCost:  float64(promptTokens) / 1000 * r.input,
		OutputCost: float64(completionTokens) / 1000 * r.output,
		Source:     source,
	}
	b.TotalCost = b.InputCost + b.OutputCost
	return b
}
