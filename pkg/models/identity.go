package models

import "fmt"

// Identity names one of the fixed agent facades. The set is closed at
// compile time; unknown keys are rejected with UnknownAgentError.
type Identity string

const (
	DataResearch    Identity = "data_research"
	Engagement      Identity = "engagement"
	Discovery       Identity = "discovery"
	Synthesis       Identity = "synthesis"
	ProjectDelivery Identity = "project_delivery"
	Orchestrator    Identity = "orchestrator"
)

// Identities returns every valid identity in display order.
func Identities() []Identity {
	return []Identity{DataResearch, Engagement, Discovery, Synthesis, ProjectDelivery, Orchestrator}
}

type UnknownAgentError struct {
	Key string
}

func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("unknown agent: %q", e.Key)
}

func ParseIdentity(key string) (Identity, error) {
	for _, id := range Identities() {
		if string(id) == key {
			return id, nil
		}
	}
	return "", &UnknownAgentError{Key: key}
}
