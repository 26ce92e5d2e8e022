// Package orchestrator implements the orchestrator facade. Despite the
// name it coordinates nothing: it interpolates the static agent and task
// registries into prompts and makes one call per operation, and the
// model does the reasoning about how agents would combine.
package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	langchainprompts "github.com/tmc/langchaingo/prompts"

	"go-consult/pkg/llm"
	"go-consult/pkg/memory/history"
	"go-consult/pkg/models"
	"go-consult/pkg/prompts"
	"go-consult/pkg/template"
)

// NotConfiguredText is returned by every orchestrator operation when the
// gateway has no credential. No call is attempted.
const NotConfiguredText = "Error: OpenAI API key not configured"

var (
	solvePrompt     = langchainprompts.NewPromptTemplate(prompts.SolveTask, []string{"Title", "Description", "Chain", "Context"})
	recommendPrompt = langchainprompts.NewPromptTemplate(prompts.RecommendWorkflow, []string{"Scenario"})
)

type Agent struct {
	gateway llm.Completer
	model   string
	info    map[string]AgentInfo
	tasks   map[string]TaskTemplate
}

// New builds the facade with its registries. Both tables are fixed at
// construction and never mutated.
func New(gateway llm.Completer, model string) *Agent {
	return &Agent{
		gateway: gateway,
		model:   model,
		info:    loadAgentsInfo(),
		tasks:   loadTaskTemplates(),
	}
}

func (a *Agent) Identity() models.Identity { return models.Orchestrator }
func (a *Agent) Model() string             { return a.model }

// TaskSummary is the displayable shape of one registry entry.
type TaskSummary struct {
	Key string `json:"key"`
	TaskTemplate
}

// Tasks lists the registry in its fixed order.
func (a *Agent) Tasks() []TaskSummary {
	out := make([]TaskSummary, 0, len(taskOrder))
	for _, key := range taskOrder {
		out = append(out, TaskSummary{Key: key, TaskTemplate: a.tasks[key]})
	}
	return out
}

// Chat answers a free-form business question with the full agent and
// task context in the system instruction plus the session's prior turns.
// Malformed history entries are dropped, not forwarded.
func (a *Agent) Chat(ctx context.Context, message string, hist []history.Message) string {
	if !a.gateway.Configured() {
		return NotConfiguredText
	}

	system, err := template.Parse(prompts.OrchestratorChatSystem, struct {
		AgentsContext string
		TasksContext  string
	}{a.agentsContext(), a.tasksContext()})
	if err != nil {
		return "Error: " + err.Error()
	}

	return a.gateway.Chat(ctx, a.model, system, history.Valid(hist), message, llm.ChatMaxTokens)
}

// SolveTask expands a registry entry into an implementation-plan prompt.
// An unknown key is answered with the valid options, not an error.
func (a *Agent) SolveTask(ctx context.Context, taskKey, companyContext string) string {
	if !a.gateway.Configured() {
		return NotConfiguredText
	}

	task, ok := a.tasks[taskKey]
	if !ok {
		return "Unknown task. Available: " + strings.Join(a.taskKeys(), ", ")
	}

	chain := make([]string, 0, len(task.Agents))
	for _, key := range task.Agents {
		chain = append(chain, a.info[key].Name)
	}

	prompt, err := solvePrompt.Format(map[string]any{
		"Title":       task.Title,
		"Description": task.Description,
		"Chain":       strings.Join(chain, " -> "),
		"Context":     companyContext,
	})
	if err != nil {
		return "Error: " + err.Error()
	}

	return a.gateway.Complete(ctx, llm.Request{
		Model:     a.model,
		System:    prompts.SolveTaskSystem,
		Prompt:    prompt,
		MaxTokens: llm.ChatMaxTokens,
	})
}

// RecommendWorkflow is SolveTask without a registry lookup: the scenario
// text goes straight into the prompt skeleton.
func (a *Agent) RecommendWorkflow(ctx context.Context, scenario string) string {
	if !a.gateway.Configured() {
		return NotConfiguredText
	}

	prompt, err := recommendPrompt.Format(map[string]any{"Scenario": scenario})
	if err != nil {
		return "Error: " + err.Error()
	}

	return a.gateway.Complete(ctx, llm.Request{
		Model:     a.model,
		System:    prompts.RecommendWorkflowSystem,
		Prompt:    prompt,
		MaxTokens: llm.ChatMaxTokens,
	})
}

func (a *Agent) agentsContext() string {
	lines := make([]string, 0, len(infoOrder))
	for _, key := range infoOrder {
		info := a.info[key]
		lines = append(lines, fmt.Sprintf("- %s: %s", info.Name, info.Desc))
	}
	return strings.Join(lines, "\n")
}

func (a *Agent) tasksContext() string {
	blocks := make([]string, 0, len(taskOrder))
	for _, key := range taskOrder {
		task := a.tasks[key]
		names := make([]string, 0, len(task.Agents))
		for _, ref := range task.Agents {
			names = append(names, a.info[ref].Name)
		}
		blocks = append(blocks, fmt.Sprintf("**%s**\n- Description: %s\n- Agents: %s\n- Timeline: %s",
			task.Title, task.Description, strings.Join(names, ", "), task.Duration))
	}
	return strings.Join(blocks, "\n\n")
}

func (a *Agent) taskKeys() []string {
	keys := make([]string, 0, len(a.tasks))
	for key := range a.tasks {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
