// internal/models/project.go
package models

import "time"

type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

type Project struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Location    *string       `json:"location"`
	Status      ProjectStatus `json:"status"`
	Description *string       `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type ProjectRequest struct {
	Title       string        `json:"title"`
	Location    *string       `json:"location"`
	Status      ProjectStatus `json:"status"`
	Description *string       `json:"description"`
}

// ProjectFilter narrows a project listing. Nil fields match everything.
// Values are checked by the handler before a filter is built.
type ProjectFilter struct {
	Title  *string
	Status *ProjectStatus
}
