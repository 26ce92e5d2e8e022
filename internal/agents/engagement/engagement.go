// Package engagement implements the engagement facade: BANT lead
// qualification and outreach email generation.
package engagement

import (
	"context"
	"fmt"

	langchainprompts "github.com/tmc/langchaingo/prompts"

	"go-consult/pkg/llm"
	"go-consult/pkg/models"
	"go-consult/pkg/prompts"
)

var (
	qualifyPrompt = langchainprompts.NewPromptTemplate(prompts.QualifyLead, []string{"Company", "Budget", "Timeline"})
	emailPrompt   = langchainprompts.NewPromptTemplate(prompts.GenerateEmail, []string{"Company", "Contact"})
)

type Agent struct {
	gateway llm.Completer
	model   string
}

func New(gateway llm.Completer, model string) *Agent {
	return &Agent{gateway: gateway, model: model}
}

func (a *Agent) Identity() models.Identity { return models.Engagement }
func (a *Agent) Model() string             { return a.model }

func (a *Agent) QualifyLead(ctx context.Context, company, budget, timeline string) models.LeadQualification {
	analysis := a.complete(ctx, qualifyPrompt, map[string]any{
		"Company":  company,
		"Budget":   budget,
		"Timeline": timeline,
	}, prompts.SalesSystem)
	return models.LeadQualification{
		Company:      company,
		BANTAnalysis: analysis,
		ModelUsed:    a.model,
	}
}

func (a *Agent) GenerateEmail(ctx context.Context, company, contactName string) models.OutreachEmail {
	email := a.complete(ctx, emailPrompt, map[string]any{
		"Company": company,
		"Contact": contactName,
	}, prompts.OutreachSystem)
	return models.OutreachEmail{
		Recipient: fmt.Sprintf("%s @ %s", contactName, company),
		Email:     email,
		ModelUsed: a.model,
	}
}

func (a *Agent) complete(ctx context.Context, tmpl langchainprompts.PromptTemplate, values map[string]any, system string) string {
	prompt, err := tmpl.Format(values)
	if err != nil {
		return "Error: " + err.Error()
	}
	return a.gateway.Complete(ctx, llm.Request{
		Model:     a.model,
		System:    system,
		Prompt:    prompt,
		MaxTokens: llm.DefaultMaxTokens,
	})
}
