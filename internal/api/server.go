package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/justinas/alice"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"go-consult/internal/agents"
	"go-consult/internal/agents/delivery"
	"go-consult/internal/agents/discovery"
	"go-consult/internal/agents/engagement"
	"go-consult/internal/agents/orchestrator"
	"go-consult/internal/agents/research"
	"go-consult/internal/agents/synthesis"
	"go-consult/internal/config"
	"go-consult/pkg/llm"
	"go-consult/pkg/logger"
	"go-consult/pkg/memory/history"
	"go-consult/pkg/models"
	"io"
	"net/http"
	"time"
)

type enrichCommand struct {
	CompanyName string `json:"company_name"`
}

type screenCommand struct {
	Text string `json:"text"`
}

type qualifyCommand struct {
	Company  string `json:"company"`
	Budget   string `json:"budget"`
	Timeline string `json:"timeline"`
}

type emailCommand struct {
	Company     string `json:"company"`
	ContactName string `json:"contact_name"`
}

type questionsCommand struct {
	Context string `json:"context"`
}

type roiCommand struct {
	Investment    float64 `json:"investment"`
	AnnualRevenue float64 `json:"annual_revenue,omitempty"`
}

type planCommand struct {
	Project string `json:"project"`
	Scope   string `json:"scope"`
}

type chatCommand struct {
	Message string `json:"message"`
}

type taskCommand struct {
	Context string `json:"context"`
}

type workflowCommand struct {
	Scenario string `json:"scenario"`
}

type textResponse struct {
	Response string `json:"response"`
}

type statusResponse struct {
	Configured        bool   `json:"configured"`
	DefaultModel      string `json:"default_model"`
	OrchestratorModel string `json:"orchestrator_model"`
}

type agentEntry struct {
	Agent string `json:"agent"`
	Model string `json:"model"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	server    *http.Server
	sessions  *sessionCache
	activity  *activityLog
	agentList []agentEntry

	research     *research.Agent
	engagement   *engagement.Agent
	discovery    *discovery.Agent
	synthesis    *synthesis.Agent
	delivery     *delivery.Agent
	orchestrator *orchestrator.Agent
}

func New(cfg *config.Config, gateway llm.Completer) *Server {
	s := &Server{
		sessions:     newSessionCache(),
		activity:     newActivityLog(),
		research:     research.New(gateway, cfg.Models.Default),
		engagement:   engagement.New(gateway, cfg.Models.Default),
		discovery:    discovery.New(gateway, cfg.Models.Orchestrator),
		synthesis:    synthesis.New(gateway, cfg.Models.Orchestrator),
		delivery:     delivery.New(gateway, cfg.Models.Default),
		orchestrator: orchestrator.New(gateway, cfg.Models.Orchestrator),
	}

	for _, id := range models.Identities() {
		agent, err := agents.New(id, gateway, cfg.Models)
		if err != nil {
			// identities come from the closed enum, so this cannot happen
			log.Panic().Err(err).Msg("building agent listing")
		}
		s.agentList = append(s.agentList, agentEntry{Agent: string(id), Model: agent.Model()})
	}

	r := chi.NewRouter()
	r.Use(logMiddleware())

	r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, statusResponse{
			Configured:        gateway.Configured(),
			DefaultModel:      cfg.Models.Default,
			OrchestratorModel: cfg.Models.Orchestrator,
		})
	})

	r.Get("/agents", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, s.agentList)
	})

	r.Post("/agents/research/enrich", s.handleEnrich)
	r.Post("/agents/research/screen-pii", s.handleScreenPII)
	r.Post("/agents/engagement/qualify", s.handleQualify)
	r.Post("/agents/engagement/email", s.handleEmail)
	r.Post("/agents/discovery/questions", s.handleQuestions)
	r.Post("/agents/synthesis/roi", s.handleROI)
	r.Post("/agents/delivery/plan", s.handlePlan)

	r.Post("/sessions", s.handleNewSession)
	r.Post("/sessions/{id}/chat", s.handleChat)
	r.Get("/sessions/{id}/history", s.handleHistory)
	r.Delete("/sessions/{id}", s.handleEndSession)

	r.Get("/orchestrator/tasks", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, s.orchestrator.Tasks())
	})
	r.Post("/orchestrator/tasks/{key}", s.handleSolveTask)
	r.Post("/orchestrator/workflow", s.handleWorkflow)

	r.Get("/activity", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, s.activity.snapshot())
	})
	r.Delete("/activity", func(w http.ResponseWriter, req *http.Request) {
		s.activity.clear()
		w.WriteHeader(http.StatusNoContent)
	})

	s.server = &http.Server{
		Addr:    fmt.Sprint(":", cfg.Port),
		Handler: r,
	}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	err := s.server.ListenAndServe()
	if err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}

	log.Info().Msg("http server started")
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	return nil
}

func (s *Server) handleEnrich(w http.ResponseWriter, req *http.Request) {
	cmd := enrichCommand{}
	if !decode(w, req, &cmd) {
		return
	}
	result := s.research.EnrichCompany(req.Context(), cmd.CompanyName)
	s.activity.record("Data Research", "Enriched "+cmd.CompanyName)
	render.JSON(w, req, result)
}

func (s *Server) handleScreenPII(w http.ResponseWriter, req *http.Request) {
	cmd := screenCommand{}
	if !decode(w, req, &cmd) {
		return
	}
	result := s.research.ScreenPII(req.Context(), cmd.Text)
	s.activity.record("Data Research", "PII screening")
	render.JSON(w, req, result)
}

func (s *Server) handleQualify(w http.ResponseWriter, req *http.Request) {
	cmd := qualifyCommand{}
	if !decode(w, req, &cmd) {
		return
	}
	result := s.engagement.QualifyLead(req.Context(), cmd.Company, cmd.Budget, cmd.Timeline)
	s.activity.record("Engagement", "Qualified "+cmd.Company)
	render.JSON(w, req, result)
}

func (s *Server) handleEmail(w http.ResponseWriter, req *http.Request) {
	cmd := emailCommand{}
	if !decode(w, req, &cmd) {
		return
	}
	result := s.engagement.GenerateEmail(req.Context(), cmd.Company, cmd.ContactName)
	s.activity.record("Engagement", "Email generated for "+cmd.ContactName)
	render.JSON(w, req, result)
}

func (s *Server) handleQuestions(w http.ResponseWriter, req *http.Request) {
	cmd := questionsCommand{}
	if !decode(w, req, &cmd) {
		return
	}
	result := s.discovery.GenerateQuestions(req.Context(), cmd.Context)
	s.activity.record("Discovery", "Generated questions")
	render.JSON(w, req, result)
}

func (s *Server) handleROI(w http.ResponseWriter, req *http.Request) {
	cmd := roiCommand{}
	if !decode(w, req, &cmd) {
		return
	}
	result := s.synthesis.CalculateROI(req.Context(), cmd.Investment, cmd.AnnualRevenue)
	s.activity.record("Synthesis", "ROI calculated for "+result.Investment)
	render.JSON(w, req, result)
}

func (s *Server) handlePlan(w http.ResponseWriter, req *http.Request) {
	cmd := planCommand{}
	if !decode(w, req, &cmd) {
		return
	}
	result := s.delivery.CreateProjectPlan(req.Context(), cmd.Project, cmd.Scope)
	s.activity.record("Project Delivery", "Planned "+cmd.Project)
	render.JSON(w, req, result)
}

func (s *Server) handleNewSession(w http.ResponseWriter, req *http.Request) {
	id := uuid.New()
	s.sessions.add(id)
	log.Debug().Str(logger.SessionIDField, id.String()).Msg("session created")
	render.JSON(w, req, struct {
		ID string `json:"id"`
	}{id.String()})
}

func (s *Server) handleChat(w http.ResponseWriter, req *http.Request) {
	sess, ok := s.session(w, req)
	if !ok {
		return
	}
	cmd := chatCommand{}
	if !decode(w, req, &cmd) {
		return
	}

	// Each session's history is guarded by its own lock; one chat turn
	// at a time per session.
	sess.mu.Lock()
	defer sess.mu.Unlock()

	response := s.orchestrator.Chat(req.Context(), cmd.Message, sess.history.Snapshot())
	sess.history.Add(history.Message{Role: history.RoleUser, Content: cmd.Message})
	sess.history.Add(history.Message{Role: history.RoleAssistant, Content: response})
	s.activity.record("Orchestrator", "Task solution generated")
	render.JSON(w, req, textResponse{Response: response})
}

func (s *Server) handleHistory(w http.ResponseWriter, req *http.Request) {
	sess, ok := s.session(w, req)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	render.JSON(w, req, sess.history.Snapshot())
}

func (s *Server) handleEndSession(w http.ResponseWriter, req *http.Request) {
	idParam := chi.URLParam(req, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, req, errorResponse{Error: "unable to parse id"})
		return
	}
	s.sessions.remove(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSolveTask(w http.ResponseWriter, req *http.Request) {
	key := chi.URLParam(req, "key")
	cmd := taskCommand{}
	if !decode(w, req, &cmd) {
		return
	}
	response := s.orchestrator.SolveTask(req.Context(), key, cmd.Context)
	s.activity.record("Orchestrator", key+" task solved")
	log.Debug().Str(logger.TaskKeyField, key).Msg("task solved")
	render.JSON(w, req, textResponse{Response: response})
}

func (s *Server) handleWorkflow(w http.ResponseWriter, req *http.Request) {
	cmd := workflowCommand{}
	if !decode(w, req, &cmd) {
		return
	}
	if cmd.Scenario == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, req, errorResponse{Error: "scenario is required"})
		return
	}
	response := s.orchestrator.RecommendWorkflow(req.Context(), cmd.Scenario)
	s.activity.record("Orchestrator", "Custom workflow recommended")
	render.JSON(w, req, textResponse{Response: response})
}

func (s *Server) session(w http.ResponseWriter, req *http.Request) (*session, bool) {
	idParam := chi.URLParam(req, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, req, errorResponse{Error: "unable to parse id"})
		return nil, false
	}
	sess, ok := s.sessions.get(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		log.Debug().Str(logger.SessionIDField, idParam).Msg("cannot find session")
		return nil, false
	}
	return sess, true
}

func decode(w http.ResponseWriter, req *http.Request, output any) bool {
	if err := unmarshalRequestBody(req, output); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		log.Debug().Msg("cannot parse body")
		render.JSON(w, req, errorResponse{Error: "unable to parse body"})
		return false
	}
	return true
}

func logMiddleware() func(http.Handler) http.Handler {
	c := alice.New()
	c = c.Append(hlog.NewHandler(log.Logger))
	c = c.Append(hlog.RemoteAddrHandler("ip"))
	c = c.Append(hlog.UserAgentHandler("agent"))
	c = c.Append(hlog.RefererHandler("referer"))
	c = c.Append(hlog.RequestIDHandler("req_id", "Request-Id"))
	c = c.Append(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("verb", r.Method).
			Stringer("url", r.URL).
			Int("size", size).
			Int("status", status).
			Int64("duration", duration.Milliseconds()).
			Msg("REQ")
	}))

	return c.Then
}

func unmarshalRequestBody(req *http.Request, output interface{}) error {
	if req.Body == nil {
		return errors.New("invalid body in request")
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	if err = req.Body.Close(); err != nil {
		return err
	}
	if err = json.Unmarshal(body, &output); err != nil {
		return err
	}

	return nil
}
