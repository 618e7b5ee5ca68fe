package generator

import "context"

// Client abstracts the completion service so it can be swapped or mocked.
type Client interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Prompt is one role-tagged request to the model.
type Prompt struct {
	System string
	User   string
}

// Settings carries the provider configuration for concrete clients.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
