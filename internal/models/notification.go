package models

import "time"

// NotificationType classifies feed entries shown to an actor.
type NotificationType string

const (
	NotifyNewApplication      NotificationType = "new-application"
	NotifyApplicationViewed   NotificationType = "application-viewed"
	NotifyApplicationAccepted NotificationType = "application-accepted"
	NotifyApplicationRejected NotificationType = "application-rejected"
	NotifyNewMessage          NotificationType = "new-message"
)

// Notification is a read model built from domain events. Only the Read
// flag is ever mutated after creation.
type Notification struct {
	ID        string           `json:"id"`
	ActorID   string           `json:"actorId"`
	Type      NotificationType `json:"type"`
	RelatedID string           `json:"relatedId"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
