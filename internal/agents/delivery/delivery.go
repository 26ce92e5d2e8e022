// Package delivery implements the project/delivery facade: structured
// project plan generation.
package delivery

import (
	"context"

	langchainprompts "github.com/tmc/langchaingo/prompts"

	"go-consult/pkg/llm"
	"go-consult/pkg/models"
	"go-consult/pkg/prompts"
)

var planPrompt = langchainprompts.NewPromptTemplate(prompts.CreateProjectPlan, []string{"Project", "Scope"})

type Agent struct {
	gateway llm.Completer
	model   string
}

func New(gateway llm.Completer, model string) *Agent {
	return &Agent{gateway: gateway, model: model}
}

func (a *Agent) Identity() models.Identity { return models.ProjectDelivery }
func (a *Agent) Model() string             { return a.model }

func (a *Agent) CreateProjectPlan(ctx context.Context, projectName, scope string) models.ProjectPlan {
	prompt, err := planPrompt.Format(map[string]any{"Project": projectName, "Scope": scope})
	plan := ""
	if err != nil {
		plan = "Error: " + err.Error()
	} else {
		plan = a.gateway.Complete(ctx, llm.Request{
			Model:     a.model,
			System:    prompts.ProjectSystem,
			Prompt:    prompt,
			MaxTokens: llm.DefaultMaxTokens,
		})
	}
	return models.ProjectPlan{
		Project:   projectName,
		Plan:      plan,
		ModelUsed: a.model,
	}
}
