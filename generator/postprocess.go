package generator

import "strings"

// Normalize trims model output and unwraps a single fenced code block when
// the model wraps the whole answer in one despite instructions.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	inner := strings.TrimPrefix(text, "```")
	// drop an optional language tag on the fence line
	if i := strings.Index(inner, "\n"); i >= 0 && !strings.ContainsAny(inner[:i], " \t") {
		inner = inner[i+1:]
	}
	inner, ok := strings.CutSuffix(strings.TrimSpace(inner), "```")
	if !ok {
		return text
	}
	return strings.TrimSpace(inner)
}
