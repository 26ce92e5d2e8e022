package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-consult/pkg/llm/llmtest"
	"go-consult/pkg/memory/history"
)

func TestSolveTaskUnknownKeyListsOptions(t *testing.T) {
	fake := &llmtest.Fake{Response: "PLAN"}
	agent := New(fake, "gpt-4-turbo")

	got := agent.SolveTask(context.Background(), "world_domination", "any context")

	assert.Contains(t, got, "Unknown task")
	for _, key := range []string{TaskLeadGen, TaskReceptionAutomation, TaskFullPipeline, TaskComplianceAutomation} {
		assert.Contains(t, got, key)
	}
	assert.Zero(t, fake.Calls)
}

func TestSolveTask(t *testing.T) {
	fake := &llmtest.Fake{Response: "ROADMAP"}
	agent := New(fake, "gpt-4-turbo")

	got := agent.SolveTask(context.Background(), TaskLeadGen, "Mid-market law firms in London")

	assert.Equal(t, "ROADMAP", got)
	assert.Equal(t, 1, fake.Calls)
	assert.Contains(t, fake.LastPrompt, "Lead Generation Automation")
	assert.Contains(t, fake.LastPrompt, "Data/Research -> Engagement -> Synthesis")
	assert.Contains(t, fake.LastPrompt, "Mid-market law firms in London")
}

func TestOperationsReportMissingCredentialWithoutCalling(t *testing.T) {
	fake := &llmtest.Fake{Unconfigured: true}
	agent := New(fake, "gpt-4-turbo")
	ctx := context.Background()

	assert.Equal(t, NotConfiguredText, agent.Chat(ctx, "hello", nil))
	assert.Equal(t, NotConfiguredText, agent.SolveTask(ctx, TaskLeadGen, "ctx"))
	assert.Equal(t, NotConfiguredText, agent.RecommendWorkflow(ctx, "scenario"))
	assert.Zero(t, fake.Calls)
}

func TestChatInterpolatesRegistries(t *testing.T) {
	fake := &llmtest.Fake{Response: "ANSWER"}
	agent := New(fake, "gpt-4-turbo")

	got := agent.Chat(context.Background(), "automate our intake", nil)

	require.Equal(t, "ANSWER", got)
	assert.Contains(t, fake.LastSystem, "Data/Research: Company enrichment")
	assert.Contains(t, fake.LastSystem, "Change/Comms")
	assert.Contains(t, fake.LastSystem, "Full Sales Pipeline Automation")
	assert.Contains(t, fake.LastSystem, "Timeline: 8-12 weeks")
	assert.Equal(t, "automate our intake", fake.LastMessage)
}

func TestChatDropsMalformedHistory(t *testing.T) {
	fake := &llmtest.Fake{Response: "ANSWER"}
	agent := New(fake, "gpt-4-turbo")
	hist := []history.Message{
		{Role: history.RoleUser, Content: "earlier question"},
		{Role: "", Content: "missing role"},
		{Role: history.RoleAssistant, Content: "earlier answer"},
	}

	agent.Chat(context.Background(), "follow-up", hist)

	require.Len(t, fake.LastHistory, 2)
	assert.Equal(t, "earlier question", fake.LastHistory[0].Content)
	assert.Equal(t, "earlier answer", fake.LastHistory[1].Content)
}

func TestRecommendWorkflow(t *testing.T) {
	fake := &llmtest.Fake{Response: "WORKFLOW"}
	agent := New(fake, "gpt-4-turbo")

	got := agent.RecommendWorkflow(context.Background(), "200 leads/month, manual intake")

	assert.Equal(t, "WORKFLOW", got)
	assert.Contains(t, fake.LastPrompt, "200 leads/month, manual intake")
	assert.Contains(t, fake.LastSystem, "agent orchestration workflows")
}

func TestTaskAgentsResolveInInfoTable(t *testing.T) {
	agent := New(&llmtest.Fake{}, "gpt-4-turbo")

	for key, task := range agent.tasks {
		for _, ref := range task.Agents {
			_, ok := agent.info[ref]
			assert.True(t, ok, "task %s references unknown agent %s", key, ref)
		}
	}
}

func TestTasksKeepRegistryOrder(t *testing.T) {
	agent := New(&llmtest.Fake{}, "gpt-4-turbo")

	tasks := agent.Tasks()

	require.Len(t, tasks, 4)
	assert.Equal(t, TaskLeadGen, tasks[0].Key)
	assert.Equal(t, "Lead Generation Automation", tasks[0].Title)
	assert.Equal(t, TaskComplianceAutomation, tasks[3].Key)
}
