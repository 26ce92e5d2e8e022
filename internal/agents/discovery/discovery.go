// Package discovery implements the discovery facade: strategic question
// generation from free-form company context.
package discovery

import (
	"context"

	langchainprompts "github.com/tmc/langchaingo/prompts"

	"go-consult/pkg/llm"
	"go-consult/pkg/models"
	"go-consult/pkg/prompts"
)

var questionsPrompt = langchainprompts.NewPromptTemplate(prompts.GenerateQuestions, []string{"Context"})

type Agent struct {
	gateway llm.Completer
	model   string
}

func New(gateway llm.Completer, model string) *Agent {
	return &Agent{gateway: gateway, model: model}
}

func (a *Agent) Identity() models.Identity { return models.Discovery }
func (a *Agent) Model() string             { return a.model }

func (a *Agent) GenerateQuestions(ctx context.Context, companyContext string) models.DiscoveryQuestions {
	prompt, err := questionsPrompt.Format(map[string]any{"Context": companyContext})
	questions := ""
	if err != nil {
		questions = "Error: " + err.Error()
	} else {
		questions = a.gateway.Complete(ctx, llm.Request{
			Model:     a.model,
			System:    prompts.ConsultantSystem,
			Prompt:    prompt,
			MaxTokens: llm.DefaultMaxTokens,
		})
	}
	return models.DiscoveryQuestions{
		Context:   companyContext,
		Questions: questions,
		ModelUsed: a.model,
	}
}
