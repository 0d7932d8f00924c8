package domain

import "time"

// AuditLog is an entry from the backend's audit trail.
type AuditLog struct {
	ID          int64     `json:"id"`
	ActorUserID string    `json:"actorUserId"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entityType"`
	EntityID    string    `json:"entityId"`
	Timestamp   time.Time `json:"timestamp"`
	Details     string    `json:"details"`
}
