package domain

import "time"

// ProjectStatus marks whether a project is still worked on.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "ACTIVE"
	ProjectStatusArchived ProjectStatus = "ARCHIVED"
)

// Project groups issues and member assignments.
type Project struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Status      ProjectStatus       `json:"status"`
	CreatedBy   *User               `json:"createdBy,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	Issues      []Issue             `json:"issues,omitempty"`
	Assignments []ProjectAssignment `json:"assignments,omitempty"`
}

// ProjectAssignment links a user to a project.
type ProjectAssignment struct {
	ID         string    `json:"id"`
	Project    *Project  `json:"project,omitempty"`
	User       *User     `json:"user,omitempty"`
	AssignedAt time.Time `json:"assignedAt"`
}
