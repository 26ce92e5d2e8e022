// Package synthesis implements the synthesis facade: three-scenario ROI
// modelling for a proposed engagement.
package synthesis

import (
	"context"

	langchainprompts "github.com/tmc/langchaingo/prompts"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-consult/pkg/llm"
	"go-consult/pkg/models"
	"go-consult/pkg/prompts"
)

// DefaultAnnualRevenue is assumed when the caller gives no baseline.
const DefaultAnnualRevenue = 50_000_000

var roiPrompt = langchainprompts.NewPromptTemplate(prompts.CalculateROI, []string{"Investment", "Revenue"})

var gbp = message.NewPrinter(language.BritishEnglish)

type Agent struct {
	gateway llm.Completer
	model   string
}

func New(gateway llm.Completer, model string) *Agent {
	return &Agent{gateway: gateway, model: model}
}

func (a *Agent) Identity() models.Identity { return models.Synthesis }
func (a *Agent) Model() string             { return a.model }

func (a *Agent) CalculateROI(ctx context.Context, investment, annualRevenue float64) models.ROIAnalysis {
	if annualRevenue <= 0 {
		annualRevenue = DefaultAnnualRevenue
	}

	amount := formatGBP(investment)
	prompt, err := roiPrompt.Format(map[string]any{
		"Investment": amount,
		"Revenue":    formatGBP(annualRevenue),
	})
	analysis := ""
	if err != nil {
		analysis = "Error: " + err.Error()
	} else {
		analysis = a.gateway.Complete(ctx, llm.Request{
			Model:     a.model,
			System:    prompts.FinanceSystem,
			Prompt:    prompt,
			MaxTokens: llm.DefaultMaxTokens,
		})
	}
	return models.ROIAnalysis{
		Investment:  amount,
		ROIAnalysis: analysis,
		ModelUsed:   a.model,
	}
}

func formatGBP(amount float64) string {
	return gbp.Sprintf("£%.0f", amount)
}
