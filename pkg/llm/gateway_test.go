package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-consult/pkg/memory/history"
)

func TestBlankKeyIsNotConfigured(t *testing.T) {
	for _, key := range []string{"", "   "} {
		g := New(key)
		assert.False(t, g.Configured())
	}
}

func TestUnconfiguredCompleteFailsWithoutNetwork(t *testing.T) {
	g := New("")

	got := g.Complete(context.Background(), Request{Model: "gpt-4o-mini", System: "s", Prompt: "p", MaxTokens: 10})

	assert.Equal(t, NotConfiguredText, got)
}

func TestUnconfiguredChatFailsWithoutNetwork(t *testing.T) {
	g := New("")

	got := g.Chat(context.Background(), "gpt-4-turbo", "s", []history.Message{{Role: history.RoleUser, Content: "hi"}}, "msg", 10)

	assert.Equal(t, NotConfiguredText, got)
}

func TestClassifyAuthenticationErrors(t *testing.T) {
	cases := []string{
		"API returned unexpected status code: 401",
		"Incorrect API key provided",
		"invalid_api_key: check your credentials",
		"authentication failure",
		"request unauthorized",
	}
	for _, msg := range cases {
		cerr := classify(errors.New(msg))
		assert.Equal(t, kindAuthentication, cerr.kind, msg)
		assert.Equal(t, BadCredentialText, cerr.display(), msg)
	}
}

func TestClassifyGenericErrors(t *testing.T) {
	cerr := classify(errors.New("connection reset by peer"))

	assert.Equal(t, kindProvider, cerr.kind)
	assert.Equal(t, "Error: connection reset by peer", cerr.display())
	assert.NotEqual(t, BadCredentialText, cerr.display())
}
