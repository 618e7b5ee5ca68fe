package generator

import (
	"context"
	"errors"
	"time"
)

// Agent runs the draft and verification passes for single sections. It
// performs exactly one outbound call per pass, never retries, and never
// writes files.
type Agent struct {
	client        Client
	expandCountry bool
}

func NewAgent(client Client, expandCountry bool) (*Agent, error) {
	if client == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{client: client, expandCountry: expandCountry}, nil
}

// Draft produces the first-pass text for one section. A response with no
// text yields an empty Draft, not an error; call failures propagate
// unchanged.
func (a *Agent) Draft(ctx context.Context, sec Section, country, grounding string) (Draft, error) {
	prompt := BuildDraftPrompt(sec, country, grounding, a.expandCountry)
	raw, err := a.client.Complete(ctx, prompt)
	if err != nil {
		return Draft{}, err
	}
	return Draft{
		SectionKey: sec.Key,
		Text:       Normalize(raw),
		CreatedAt:  time.Now(),
	}, nil
}

// Verify runs the compliance pass over a draft. An empty draft is submitted
// as-is; the pass must tolerate it.
func (a *Agent) Verify(ctx context.Context, sec Section, country string, d Draft, approvedSources []string) (Verified, error) {
	prompt := BuildVerifyPrompt(sec, country, d.Text, approvedSources)
	raw, err := a.client.Complete(ctx, prompt)
	if err != nil {
		return Verified{}, err
	}
	return Verified{
		SectionKey: sec.Key,
		Text:       Normalize(raw),
		CheckedAt:  time.Now(),
	}, nil
}
