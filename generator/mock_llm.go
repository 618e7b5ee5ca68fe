package generator

import (
	"context"
	"strings"
)

// MockClient is a stand-in Client for local runs and tests. When Respond is
// set it decides the reply per prompt; otherwise a canned Markdown body is
// returned.
type MockClient struct {
	Respond func(ctx context.Context, prompt Prompt) (string, error)
}

func (m MockClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if m.Respond != nil {
		return m.Respond(ctx, prompt)
	}
	var sb strings.Builder
	sb.WriteString("Placeholder section body generated without a model call.\n\n")
	sb.WriteString("- **Status:** baseline description pending.\n")
	sb.WriteString("- **Gaps:** [UNVERIFIED] to be confirmed against approved sources.\n")
	return sb.String(), nil
}
