// Package history holds a session's conversation as an append-only list
// of role-tagged messages. The orchestrator receives a snapshot by value;
// only the session layer mutates it.
package history

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type History struct {
	Items []Message `json:"messages"`
}

func (h *History) Add(m Message) {
	h.Items = append(h.Items, m)
}

// Snapshot returns a copy safe to hand across goroutines.
func (h *History) Snapshot() []Message {
	out := make([]Message, len(h.Items))
	copy(out, h.Items)
	return out
}

// Valid filters out malformed entries. Anything without one of the two
// known role tags, or with empty content, is silently dropped rather
// than forwarded to the model.
func Valid(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Content == "" {
			continue
		}
		if m.Role != RoleUser && m.Role != RoleAssistant {
			continue
		}
		out = append(out, m)
	}
	return out
}
