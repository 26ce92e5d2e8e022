package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDropsMalformedEntries(t *testing.T) {
	msgs := []Message{
		{Role: RoleUser, Content: "hello"},
		{Role: "", Content: "no role"},
		{Role: "system", Content: "not a session role"},
		{Role: RoleAssistant, Content: ""},
		{Role: RoleAssistant, Content: "hi"},
	}

	got := Valid(msgs)

	assert.Equal(t, []Message{
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi"},
	}, got)
}

func TestSnapshotIsACopy(t *testing.T) {
	h := History{}
	h.Add(Message{Role: RoleUser, Content: "first"})

	snap := h.Snapshot()
	h.Add(Message{Role: RoleAssistant, Content: "second"})

	assert.Len(t, snap, 1)
	assert.Len(t, h.Items, 2)
}
