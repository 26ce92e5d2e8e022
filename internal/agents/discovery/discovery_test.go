package discovery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-consult/pkg/llm/llmtest"
)

func TestGenerateQuestions(t *testing.T) {
	fake := &llmtest.Fake{Response: "QUESTIONS"}
	agent := New(fake, "gpt-4-turbo")

	result := agent.GenerateQuestions(context.Background(), "Mid-market SaaS company, 500 employees")

	assert.Equal(t, "Mid-market SaaS company, 500 employees", result.Context)
	assert.Equal(t, "QUESTIONS", result.Questions)
	assert.Equal(t, "gpt-4-turbo", result.ModelUsed)

	assert.Equal(t, "gpt-4-turbo", fake.LastModel)
	assert.Contains(t, fake.LastPrompt, "10 strategic discovery questions")
	assert.Contains(t, fake.LastPrompt, "Mid-market SaaS company")
	assert.Contains(t, fake.LastSystem, "business consultant")
}
