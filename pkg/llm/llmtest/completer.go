// Package llmtest provides a Completer stub for facade and API tests.
package llmtest

import (
	"context"

	"go-consult/pkg/llm"
	"go-consult/pkg/memory/history"
)

// Fake records every call and answers with a fixed string.
type Fake struct {
	Response     string
	Unconfigured bool

	Calls       int
	LastModel   string
	LastSystem  string
	LastPrompt  string
	LastHistory []history.Message
	LastMessage string
}

var _ llm.Completer = (*Fake)(nil)

func (f *Fake) Configured() bool {
	return !f.Unconfigured
}

func (f *Fake) Complete(_ context.Context, req llm.Request) string {
	f.Calls++
	f.LastModel = req.Model
	f.LastSystem = req.System
	f.LastPrompt = req.Prompt
	return f.Response
}

func (f *Fake) Chat(_ context.Context, model, system string, hist []history.Message, message string, _ int) string {
	f.Calls++
	f.LastModel = model
	f.LastSystem = system
	f.LastHistory = hist
	f.LastMessage = message
	return f.Response
}
