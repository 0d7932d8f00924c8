package events

import "time"

// EventType enumerates session trail event identifiers.
type EventType string

const (
	EventSessionLogin  EventType = "session_login"
	EventSessionLogout EventType = "session_logout"
	EventRouteAdmitted EventType = "route_admitted"
	EventRouteRejected EventType = "route_rejected"
)

// Event is a session-trail event emitted by the web layer. It is
// observational only; no authorization decision ever depends on it.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Subject   string    `json:"subject,omitempty"`
	Path      string    `json:"path,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail,omitempty"`
}
