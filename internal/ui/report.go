// Package ui renders the diagnostic report: token usage, cost estimates and
// sanitization notices. Everything here writes to stderr so stdout carries
// nothing but the final filename.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"ai-rename/internal/pricing"
	"ai-rename/internal/suggest"
)

// The renderer is bound to stderr: stdout is usually a pipe here, and the
// default renderer would detect that and strip colors from a live terminal.
var renderer = lipgloss.NewRenderer(os.Stderr)

// Plain disables all styling. The report text stays identical.
func Plain() {
	renderer.SetColorProfile(termenv.Ascii)
}

var (
	headerStyle = renderer.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	labelStyle = renderer.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	valueStyle = renderer.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	warnBadge = renderer.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#F59E0B")).
			Padding(0, 1).
			Bold(true).
			SetString("SANITIZED")

	noteBadge = renderer.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#3B82F6")).
			Padding(0, 1).
			Bold(true).
			SetString("NOTE")

	errorBadge = renderer.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#EF4444")).
			Padding(0, 1).
			Bold(true).
			SetString("ERROR")
)

// Usage prints the token usage block reported by the API.
func Usage(u suggest.TokenUsage) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, headerStyle.Render("Token Usage:"))
	printRow("Input tokens: ", humanize.Comma(int64(u.PromptTokens)))
	printRow("Output tokens:", humanize.Comma(int64(u.CompletionTokens)))
	printRow("Total tokens: ", humanize.Comma(int64(u.TotalTokens)))
}

// Cost prints the estimated cost block, labeled with the estimator that
// produced the figures.
func Cost(b *pricing.Breakdown) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, headerStyle.Render(fmt.Sprintf("Cost Estimate (%s):", b.Source)))
	printRow("Input cost: ", fmt.Sprintf("$%.6f", b.InputCost))
	printRow("Output cost:", fmt.Sprintf("$%.6f", b.OutputCost))
	printRow("Total cost: ", fmt.Sprintf("$%.6f", b.TotalCost))
}

// Sanitized reports that the model's suggestion was altered on its way to
// the final filename. The rename proceeds; the notice keeps the change
// visible.
func Sanitized(suggestion, final string) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "%s %s\n", warnBadge, valueStyle.Render(fmt.Sprintf("suggestion %q was adjusted to %q", suggestion, final)))
}

// Clipped reports that the content excerpt was cut down before prompting.
func Clipped(maxTokens int) {
	Notef("content excerpt clipped to %s tokens", humanize.Comma(int64(maxTokens)))
}

// Notef prints an informational message.
func Notef(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", noteBadge, valueStyle.Render(fmt.Sprintf(format, a...)))
}

// Errorf prints an error message.
func Errorf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorBadge, valueStyle.Render(fmt.Sprintf(format, a...)))
}

func printRow(label, value string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", labelStyle.Render(label), valueStyle.Render(value))
}
