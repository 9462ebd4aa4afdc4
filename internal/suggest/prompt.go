package suggest

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the single user message sent to the model. The layout
// is deliberately stable: cost recounting downstream prices this exact text,
// and example blocks slot in between the instruction and the original name.
func BuildPrompt(req *Request) string {
	return fmt.Sprintf(`Instruction: %s
%s
Original filename: %s

File content (excerpt):
%s

Please provide only the new filename (with extension), nothing else.`,
		req.Instruction, FormatExamples(req.Examples), req.Original, req.Content)
}

// FormatExamples renders prior "old -> new" rename pairs as a prompt block.
// Lines without the arrow marker are dropped, and a blank input produces no
// block at all.
func FormatExamples(examples string) string {
	if strings.TrimSpace(examples) == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nPrevious rename examples for consistency:\n")
	for _, line := range strings.Split(strings.TrimSpace(examples), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, " -> ") {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}
