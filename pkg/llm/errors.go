package llm

import "strings"

// Display strings for the three failure classes. The authentication
// message is deliberately distinct from the generic one so callers can
// surface a remediation hint without inspecting anything structured.
const (
	NotConfiguredText = "Error: OpenAI API key not configured. Please add OPENAI_API_KEY to .env and restart."
	BadCredentialText = "Error: Invalid or missing OpenAI API key. Please check OPENAI_API_KEY in .env."
	genericPrefix     = "Error: "
)

type errKind int

const (
	kindConfiguration errKind = iota
	kindAuthentication
	kindProvider
)

// callError is the tagged failure used inside the gateway; it becomes a
// plain string at the public method boundary.
type callError struct {
	kind  errKind
	cause error
}

func (e *callError) display() string {
	switch e.kind {
	case kindConfiguration:
		return NotConfiguredText
	case kindAuthentication:
		return BadCredentialText
	default:
		return genericPrefix + e.cause.Error()
	}
}

var authKeywords = []string{"api key", "api_key", "authentication", "unauthorized", "401"}

// classify buckets a provider error by inspecting its text. The provider
// client does not expose structured error codes for every transport, so
// keyword matching is the contract here.
func classify(err error) *callError {
	msg := strings.ToLower(err.Error())
	for _, kw := range authKeywords {
		if strings.Contains(msg, kw) {
			return &callError{kind: kindAuthentication, cause: err}
		}
	}
	return &callError{kind: kindProvider, cause: err}
}
