// Package agents maps the closed set of agent identities to their
// facade constructors.
package agents

import (
	"go-consult/internal/agents/delivery"
	"go-consult/internal/agents/discovery"
	"go-consult/internal/agents/engagement"
	"go-consult/internal/agents/orchestrator"
	"go-consult/internal/agents/research"
	"go-consult/internal/agents/synthesis"
	"go-consult/internal/config"
	"go-consult/pkg/llm"
	"go-consult/pkg/models"
)

// Agent is the surface every facade shares. The operations themselves
// are domain-specific and live on the concrete types.
type Agent interface {
	Identity() models.Identity
	Model() string
}

var constructors = map[models.Identity]func(llm.Completer, config.Models) Agent{
	models.DataResearch: func(g llm.Completer, m config.Models) Agent {
		return research.New(g, m.Default)
	},
	models.Engagement: func(g llm.Completer, m config.Models) Agent {
		return engagement.New(g, m.Default)
	},
	models.Discovery: func(g llm.Completer, m config.Models) Agent {
		return discovery.New(g, m.Orchestrator)
	},
	models.Synthesis: func(g llm.Completer, m config.Models) Agent {
		return synthesis.New(g, m.Orchestrator)
	},
	models.ProjectDelivery: func(g llm.Completer, m config.Models) Agent {
		return delivery.New(g, m.Default)
	},
	models.Orchestrator: func(g llm.Completer, m config.Models) Agent {
		return orchestrator.New(g, m.Orchestrator)
	},
}

// New constructs the facade for an identity. Unknown identities get a
// typed error rather than a panic on a missing table entry.
func New(id models.Identity, gateway llm.Completer, m config.Models) (Agent, error) {
	ctor, ok := constructors[id]
	if !ok {
		return nil, &models.UnknownAgentError{Key: string(id)}
	}
	return ctor(gateway, m), nil
}
