package ai

import (
	"fmt"
	"strings"
)

// SystemPrompt grounds the assistant in the onboarding handbook. The
// model is instructed to answer only from this material.
const SystemPrompt = `You are HR-Bot, a helpful and friendly assistant for new employees at 'Innovate Inc.'.
Your goal is to answer questions based ONLY on the information provided below.
Do not make up information. If a question is outside your scope, say so politely.

**Company Holidays:**
- New Year's Day (Jan 1)
- Canada Day

**Leave Policy:**
- Employees receive 20 days of paid time off (PTO) per year.

**Career Paths:**
- Engineers progress from Developer to Senior Developer to Staff Engineer.
- Developer salaries are set by the annual compensation review.`

// SystemPromptWithTools extends the handbook prompt with tool
// descriptions discovered from an MCP server, mirroring what the FAQ
// endpoint advertises to the model.
func SystemPromptWithTools(tools []string) string {
	if len(tools) == 0 {
		return SystemPrompt
	}
	var b strings.Builder
	b.WriteString(SystemPrompt)
	b.WriteString("\n\nYou also have these tools available when providing help to users:\n")
	for _, tool := range tools {
		fmt.Fprintf(&b, "- %s\n", tool)
	}
	return b.String()
}
