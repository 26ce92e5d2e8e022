package api

import (
	"sync"
	"time"

	"go-consult/pkg/models"
)

// activityLog keeps recent agent activity for display. In-memory only;
// cleared on restart or on request.
type activityLog struct {
	mu      sync.Mutex
	entries []models.ActivityEntry
}

func newActivityLog() *activityLog {
	return &activityLog{}
}

func (l *activityLog) record(agent, action string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, models.ActivityEntry{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Agent:     agent,
		Action:    action,
		Status:    "success",
	})
}

func (l *activityLog) snapshot() []models.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *activityLog) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
