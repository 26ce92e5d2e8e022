package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-consult/internal/config"
	"go-consult/pkg/llm/llmtest"
)

func newTestServer(fake *llmtest.Fake) *Server {
	cfg := &config.Config{
		Port:     "8080",
		LogLevel: "info",
		Models:   config.Models{Default: "gpt-4o-mini", Orchestrator: "gpt-4-turbo"},
	}
	return New(cfg, fake)
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestStatus(t *testing.T) {
	rec := do(t, newTestServer(&llmtest.Fake{}), http.MethodGet, "/status", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var status statusResponse
	decodeBody(t, rec, &status)
	assert.True(t, status.Configured)
	assert.Equal(t, "gpt-4o-mini", status.DefaultModel)
	assert.Equal(t, "gpt-4-turbo", status.OrchestratorModel)
}

func TestListAgents(t *testing.T) {
	rec := do(t, newTestServer(&llmtest.Fake{}), http.MethodGet, "/agents", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []agentEntry
	decodeBody(t, rec, &entries)
	require.Len(t, entries, 6)
	assert.Equal(t, "data_research", entries[0].Agent)
	assert.Equal(t, "gpt-4o-mini", entries[0].Model)
	assert.Equal(t, "orchestrator", entries[5].Agent)
	assert.Equal(t, "gpt-4-turbo", entries[5].Model)
}

func TestEnrichCompanyRoundTrip(t *testing.T) {
	fake := &llmtest.Fake{Response: "PROFILE_TEXT"}
	s := newTestServer(fake)

	rec := do(t, s, http.MethodPost, "/agents/research/enrich", enrichCommand{CompanyName: "Acme Ltd"})

	require.Equal(t, http.StatusOK, rec.Code)
	var result map[string]string
	decodeBody(t, rec, &result)
	assert.Equal(t, "Acme Ltd", result["company_name"])
	assert.Equal(t, "PROFILE_TEXT", result["profile"])
	assert.Equal(t, "gpt-4o-mini", result["model_used"])
	assert.NotEmpty(t, result["timestamp"])
}

func TestQualifyLeadRoundTrip(t *testing.T) {
	fake := &llmtest.Fake{Response: "QUAL"}
	s := newTestServer(fake)

	rec := do(t, s, http.MethodPost, "/agents/engagement/qualify", qualifyCommand{
		Company: "Acme", Budget: "£100K-500K", Timeline: "3-6 months",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result map[string]string
	decodeBody(t, rec, &result)
	assert.Equal(t, "Acme", result["company"])
	assert.Equal(t, "QUAL", result["bant_analysis"])
	assert.Equal(t, "gpt-4o-mini", result["model_used"])
}

func TestBadBodyIsRejected(t *testing.T) {
	s := newTestServer(&llmtest.Fake{})
	req := httptest.NewRequest(http.MethodPost, "/agents/research/enrich", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionChatAccumulatesHistory(t *testing.T) {
	fake := &llmtest.Fake{Response: "ANSWER"}
	s := newTestServer(fake)

	rec := do(t, s, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)

	rec = do(t, s, http.MethodPost, "/sessions/"+created.ID+"/chat", chatCommand{Message: "first question"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, fake.LastHistory)

	rec = do(t, s, http.MethodPost, "/sessions/"+created.ID+"/chat", chatCommand{Message: "second question"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fake.LastHistory, 2)
	assert.Equal(t, "first question", fake.LastHistory[0].Content)
	assert.Equal(t, "ANSWER", fake.LastHistory[1].Content)

	rec = do(t, s, http.MethodGet, "/sessions/"+created.ID+"/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestChatUnknownSession(t *testing.T) {
	s := newTestServer(&llmtest.Fake{})

	rec := do(t, s, http.MethodPost, "/sessions/0c9adcd0-95f1-4f3e-8ecb-d80a1f71b2a3/chat", chatCommand{Message: "m"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSolveTaskUnknownKeyIsDisplayable(t *testing.T) {
	fake := &llmtest.Fake{Response: "ROADMAP"}
	s := newTestServer(fake)

	rec := do(t, s, http.MethodPost, "/orchestrator/tasks/nonsense", taskCommand{Context: "ctx"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp textResponse
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp.Response, "Unknown task")
	assert.Contains(t, resp.Response, "lead_gen")
	assert.Zero(t, fake.Calls)
}

func TestWorkflowRequiresScenario(t *testing.T) {
	s := newTestServer(&llmtest.Fake{})

	rec := do(t, s, http.MethodPost, "/orchestrator/workflow", workflowCommand{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActivityLogRecordsAndClears(t *testing.T) {
	fake := &llmtest.Fake{Response: "PROFILE_TEXT"}
	s := newTestServer(fake)

	do(t, s, http.MethodPost, "/agents/research/enrich", enrichCommand{CompanyName: "Acme Ltd"})

	rec := do(t, s, http.MethodGet, "/activity", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []map[string]string
	decodeBody(t, rec, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "Data Research", entries[0]["agent"])
	assert.Equal(t, "Enriched Acme Ltd", entries[0]["action"])
	assert.Equal(t, "success", entries[0]["status"])

	rec = do(t, s, http.MethodDelete, "/activity", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/activity", nil)
	decodeBody(t, rec, &entries)
	assert.Empty(t, entries)
}

func TestListTasks(t *testing.T) {
	rec := do(t, newTestServer(&llmtest.Fake{}), http.MethodGet, "/orchestrator/tasks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []map[string]any
	decodeBody(t, rec, &tasks)
	require.Len(t, tasks, 4)
	assert.Equal(t, "lead_gen", tasks[0]["key"])
}
