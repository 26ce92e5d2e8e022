package models

// ActivityEntry is one row of the in-memory activity log shown by the
// presentation layer. Not persisted.
type ActivityEntry struct {
	Timestamp string `json:"timestamp"`
	Agent     string `json:"agent"`
	Action    string `json:"action"`
	Status    string `json:"status"`
}
