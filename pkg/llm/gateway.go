// Package llm is the single point of contact with the chat-completion
// provider. Failures never propagate as errors: callers display whatever
// text they get, so every failure path returns a self-describing string
// through the same channel a completion would use.
package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"go-consult/pkg/memory/history"
)

// Temperature is fixed across every call.
const Temperature = 0.7

const (
	DefaultMaxTokens = 1000
	ChatMaxTokens    = 2000
)

type Request struct {
	Model     string
	System    string
	Prompt    string
	MaxTokens int
}

// Completer is implemented by the gateway and by test stubs.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, req Request) string
	Chat(ctx context.Context, model, system string, hist []history.Message, message string, maxTokens int) string
}

// Gateway issues exactly one outbound request per invocation. No retry,
// no caching, no timeout beyond the transport default.
type Gateway struct {
	client  *openai.LLM
	initErr error
}

// New resolves the credential once, at construction. A blank key leaves
// the gateway unconfigured; every later call fails fast with the
// configuration message and attempts no network I/O.
func New(apiKey string) *Gateway {
	g := &Gateway{}
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return g
	}

	client, err := openai.New(openai.WithToken(key))
	if err != nil {
		g.initErr = err
		return g
	}
	g.client = client
	return g
}

func (g *Gateway) Configured() bool {
	return g.client != nil
}

func (g *Gateway) Complete(ctx context.Context, req Request) string {
	text, cerr := g.call(ctx, req.Model, req.MaxTokens,
		llms.TextParts(schema.ChatMessageTypeSystem, req.System),
		llms.TextParts(schema.ChatMessageTypeHuman, req.Prompt),
	)
	if cerr != nil {
		return cerr.display()
	}
	return text
}

func (g *Gateway) Chat(ctx context.Context, model, system string, hist []history.Message, message string, maxTokens int) string {
	msgs := make([]llms.MessageContent, 0, len(hist)+2)
	msgs = append(msgs, llms.TextParts(schema.ChatMessageTypeSystem, system))
	for _, m := range history.Valid(hist) {
		role := schema.ChatMessageTypeHuman
		if m.Role == history.RoleAssistant {
			role = schema.ChatMessageTypeAI
		}
		msgs = append(msgs, llms.TextParts(role, m.Content))
	}
	msgs = append(msgs, llms.TextParts(schema.ChatMessageTypeHuman, message))

	text, cerr := g.call(ctx, model, maxTokens, msgs...)
	if cerr != nil {
		return cerr.display()
	}
	return text
}

func (g *Gateway) call(ctx context.Context, model string, maxTokens int, msgs ...llms.MessageContent) (string, *callError) {
	if g.client == nil {
		return "", &callError{kind: kindConfiguration, cause: g.initErr}
	}

	resp, err := g.client.GenerateContent(ctx, msgs,
		llms.WithModel(model),
		llms.WithTemperature(Temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", &callError{kind: kindProvider, cause: errors.New("provider returned no completion")}
	}

	return resp.Choices[0].Content, nil
}
