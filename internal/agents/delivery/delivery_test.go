package delivery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-consult/pkg/llm/llmtest"
)

func TestCreateProjectPlan(t *testing.T) {
	fake := &llmtest.Fake{Response: "PLAN_TEXT"}
	agent := New(fake, "gpt-4o-mini")

	result := agent.CreateProjectPlan(context.Background(), "Digital Transformation", "Implement AI consulting platform")

	assert.Equal(t, "Digital Transformation", result.Project)
	assert.Equal(t, "PLAN_TEXT", result.Plan)
	assert.Equal(t, "gpt-4o-mini", result.ModelUsed)

	assert.Contains(t, fake.LastPrompt, "Digital Transformation")
	assert.Contains(t, fake.LastPrompt, "Scope: Implement AI consulting platform")
	assert.Contains(t, fake.LastSystem, "project management expert")
}
