package domain

import "time"

// IssueStatus tracks an issue through its workflow.
type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "OPEN"
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	IssueStatusResolved   IssueStatus = "RESOLVED"
	IssueStatusClosed     IssueStatus = "CLOSED"
)

// IssueSeverity grades impact.
type IssueSeverity string

const (
	IssueSeverityLow      IssueSeverity = "LOW"
	IssueSeverityMedium   IssueSeverity = "MEDIUM"
	IssueSeverityHigh     IssueSeverity = "HIGH"
	IssueSeverityCritical IssueSeverity = "CRITICAL"
)

// IssuePriority grades urgency; it shares the severity scale.
type IssuePriority string

const (
	IssuePriorityLow      IssuePriority = "LOW"
	IssuePriorityMedium   IssuePriority = "MEDIUM"
	IssuePriorityHigh     IssuePriority = "HIGH"
	IssuePriorityCritical IssuePriority = "CRITICAL"
)

// Issue is the tracker's central record.
type Issue struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      IssueStatus   `json:"status"`
	Severity    IssueSeverity `json:"severity"`
	Priority    IssuePriority `json:"priority"`
	Project     *Project      `json:"project,omitempty"`
	CreatedBy   *User         `json:"createdBy,omitempty"`
	AssignedTo  *User         `json:"assignedTo,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty"`
}

// IssueChangeType classifies a history entry.
type IssueChangeType string

const (
	IssueChangeCreated      IssueChangeType = "CREATED"
	IssueChangeStatusChange IssueChangeType = "STATUS_CHANGE"
	IssueChangeFieldUpdate  IssueChangeType = "FIELD_UPDATE"
)

// IssueHistory records a single field change on an issue.
type IssueHistory struct {
	ID            string          `json:"id"`
	Issue         *Issue          `json:"issue,omitempty"`
	ChangedByUser *User           `json:"changedByUser,omitempty"`
	ChangedAt     time.Time       `json:"changedAt"`
	FieldName     *string         `json:"fieldName"`
	OldValue      *string         `json:"oldValue"`
	NewValue      *string         `json:"newValue"`
	ChangeType    IssueChangeType `json:"changeType"`
}
