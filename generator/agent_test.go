package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgentRequiresClient(t *testing.T) {
	_, err := NewAgent(nil, true)
	assert.Error(t, err)
}

func TestDraftTrimsResponse(t *testing.T) {
	agent, err := NewAgent(MockClient{Respond: func(context.Context, Prompt) (string, error) {
		return "  drafted body \n", nil
	}}, true)
	require.NoError(t, err)

	d, err := agent.Draft(context.Background(), Catalog()[0], "Cuba", "")
	require.NoError(t, err)
	assert.Equal(t, "drafted body", d.Text)
	assert.Equal(t, Catalog()[0].Key, d.SectionKey)
	assert.False(t, d.CreatedAt.IsZero())
}

func TestDraftEmptyResponseIsNotAnError(t *testing.T) {
	agent, err := NewAgent(MockClient{Respond: func(context.Context, Prompt) (string, error) {
		return "", nil
	}}, true)
	require.NoError(t, err)

	d, err := agent.Draft(context.Background(), Catalog()[0], "Cuba", "")
	require.NoError(t, err)
	assert.Equal(t, "", d.Text)
}

func TestDraftPropagatesCallErrorUnchanged(t *testing.T) {
	boom := errors.New("rate limited")
	agent, err := NewAgent(MockClient{Respond: func(context.Context, Prompt) (string, error) {
		return "", boom
	}}, true)
	require.NoError(t, err)

	_, err = agent.Draft(context.Background(), Catalog()[0], "Cuba", "")
	assert.ErrorIs(t, err, boom)
}

func TestVerifyHandlesEmptyDraft(t *testing.T) {
	agent, err := NewAgent(MockClient{Respond: func(_ context.Context, p Prompt) (string, error) {
		assert.Contains(t, p.User, "Draft:")
		return "", nil
	}}, true)
	require.NoError(t, err)

	v, err := agent.Verify(context.Background(), Catalog()[0], "Cuba", Draft{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "", v.Text)
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  plain  ":                     "plain",
		"```\nfenced body\n```":         "fenced body",
		"```markdown\nfenced body\n```": "fenced body",
		"```unclosed fence":             "```unclosed fence",
		"no fences\n\nwith paragraphs":  "no fences\n\nwith paragraphs",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}
