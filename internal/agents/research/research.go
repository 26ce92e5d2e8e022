// Package research implements the data/research facade: company
// enrichment and PII screening.
package research

import (
	"context"
	"time"

	langchainprompts "github.com/tmc/langchaingo/prompts"

	"go-consult/pkg/llm"
	"go-consult/pkg/models"
	"go-consult/pkg/prompts"
)

var (
	enrichPrompt = langchainprompts.NewPromptTemplate(prompts.EnrichCompany, []string{"Company"})
	screenPrompt = langchainprompts.NewPromptTemplate(prompts.ScreenPII, []string{"Text"})
)

const sampleLimit = 100

type Agent struct {
	gateway llm.Completer
	model   string
}

func New(gateway llm.Completer, model string) *Agent {
	return &Agent{gateway: gateway, model: model}
}

func (a *Agent) Identity() models.Identity { return models.DataResearch }
func (a *Agent) Model() string             { return a.model }

func (a *Agent) EnrichCompany(ctx context.Context, companyName string) models.CompanyProfile {
	profile := a.complete(ctx, enrichPrompt, map[string]any{"Company": companyName}, prompts.ResearchSystem)
	return models.CompanyProfile{
		CompanyName: companyName,
		Profile:     profile,
		ModelUsed:   a.model,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

func (a *Agent) ScreenPII(ctx context.Context, text string) models.PIIAnalysis {
	analysis := a.complete(ctx, screenPrompt, map[string]any{"Text": text}, prompts.ComplianceSystem)
	return models.PIIAnalysis{
		TextSample: truncate(text, sampleLimit),
		Analysis:   analysis,
		ModelUsed:  a.model,
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

// truncate shortens the echoed sample for display only; the full text is
// still sent to the model.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
