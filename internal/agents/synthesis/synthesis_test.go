package synthesis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-consult/pkg/llm/llmtest"
)

func TestCalculateROI(t *testing.T) {
	fake := &llmtest.Fake{Response: "ROI_TEXT"}
	agent := New(fake, "gpt-4-turbo")

	result := agent.CalculateROI(context.Background(), 500000, 10000000)

	assert.Equal(t, "£500,000", result.Investment)
	assert.Equal(t, "ROI_TEXT", result.ROIAnalysis)
	assert.Equal(t, "gpt-4-turbo", result.ModelUsed)

	assert.Contains(t, fake.LastPrompt, "£500,000 consulting engagement")
	assert.Contains(t, fake.LastPrompt, "£10,000,000")
	assert.Contains(t, fake.LastSystem, "financial analyst")
}

func TestCalculateROIDefaultsRevenue(t *testing.T) {
	fake := &llmtest.Fake{Response: "ROI_TEXT"}
	agent := New(fake, "gpt-4-turbo")

	agent.CalculateROI(context.Background(), 250000, 0)

	assert.Contains(t, fake.LastPrompt, "£50,000,000")
}
