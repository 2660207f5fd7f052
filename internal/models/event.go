package models

import "time"

// EventType identifies a domain event emitted by the engine.
type EventType string

const (
	EventApplicationSubmitted     EventType = "application.submitted"
	EventApplicationStatusChanged EventType = "application.status-changed"
	EventJobStatusChanged         EventType = "job.status-changed"
)

// Event is emitted by the engine after a successful mutation. The engine
// never builds notification records itself; an external subscriber turns
// events into whatever feedback the presentation needs.
type Event struct {
	Type          EventType `json:"type"`
	JobID         string    `json:"jobId"`
	JobTitle      string    `json:"jobTitle"`
	RecruiterID   string    `json:"recruiterId"`
	ApplicationID string    `json:"applicationId,omitempty"`
	SeekerID      string    `json:"seekerId,omitempty"`
	SeekerName    string    `json:"seekerName,omitempty"`
	Status        string    `json:"status,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}
