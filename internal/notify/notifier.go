// Package notify turns engine domain events into the notification feed
// the presentation layer reads, keeping notification formatting out of
// the core business logic.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"gigmatch/internal/common/logger"
	"gigmatch/internal/models"
)

// Sink delivers a built notification to an external channel. Delivery
// failures are logged, never propagated back into the engine operation
// that produced the event.
type Sink interface {
	Deliver(ctx context.Context, n models.Notification) error
}

// Notifier subscribes to engine events and maintains the in-memory
// notification feed. It implements engine.EventPublisher.
type Notifier struct {
	mu    sync.Mutex
	feed  []*models.Notification
	sinks []Sink
	log   logger.Logger
}

func New(log logger.Logger, sinks ...Sink) *Notifier {
	return &Notifier{
		sinks: sinks,
		log:   log.WithFields(map[string]interface{}{"component": "notify"}),
	}
}

// Preload seeds the feed, preserving order. Used for fixture data.
func (n *Notifier) Preload(seeded []models.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, record := range seeded {
		cp := record
		n.feed = append(n.feed, &cp)
	}
}

// Publish builds feed entries for the event and pushes them to every
// sink. Job status changes carry no recipient of their own and are only
// logged.
func (n *Notifier) Publish(ctx context.Context, ev models.Event) {
	records := buildNotifications(ev)
	if len(records) == 0 {
		n.log.Debug("event without feed entry", map[string]interface{}{
			"type":  ev.Type,
			"jobId": ev.JobID,
		})
		return
	}

	n.mu.Lock()
	for i := range records {
		n.feed = append(n.feed, &records[i])
	}
	n.mu.Unlock()

	for _, record := range records {
		for _, sink := range n.sinks {
			if err := sink.Deliver(ctx, record); err != nil {
				n.log.Warn("notification delivery failed", map[string]interface{}{
					"notificationId": record.ID,
					"error":          err.Error(),
				})
			}
		}
	}
}

// For returns the actor's notifications, oldest first.
func (n *Notifier) For(actorID string) []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := []models.Notification{}
	for _, record := range n.feed {
		if record.ActorID == actorID {
			out = append(out, *record)
		}
	}
	return out
}

// MarkRead flips the read flag, the only mutation a notification allows.
func (n *Notifier) MarkRead(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, record := range n.feed {
		if record.ID == id {
			record.Read = true
			return true
		}
	}
	return false
}

// Unread counts the actor's unread notifications.
func (n *Notifier) Unread(actorID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, record := range n.feed {
		if record.ActorID == actorID && !record.Read {
			count++
		}
	}
	return count
}

func buildNotifications(ev models.Event) []models.Notification {
	switch ev.Type {
	case models.EventApplicationSubmitted:
		return []models.Notification{newNotification(
			ev.RecruiterID,
			models.NotifyNewApplication,
			ev.ApplicationID,
			fmt.Sprintf("%s has applied to %s position", ev.SeekerName, ev.JobTitle),
			ev.OccurredAt,
		)}
	case models.EventApplicationStatusChanged:
		var kind models.NotificationType
		var verb string
		switch models.ApplicationStatus(ev.Status) {
		case models.ApplicationViewed:
			kind, verb = models.NotifyApplicationViewed, "viewed"
		case models.ApplicationAccepted:
			kind, verb = models.NotifyApplicationAccepted, "accepted"
		case models.ApplicationRejected:
			kind, verb = models.NotifyApplicationRejected, "rejected"
		default:
			return nil
		}
		return []models.Notification{newNotification(
			ev.SeekerID,
			kind,
			ev.ApplicationID,
			fmt.Sprintf("Your application for %s has been %s", ev.JobTitle, verb),
			ev.OccurredAt,
		)}
	}
	return nil
}

func newNotification(actorID string, kind models.NotificationType, relatedID, message string, at time.Time) models.Notification {
	return models.Notification{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		Type:      kind,
		RelatedID: relatedID,
		Message:   message,
		CreatedAt: at,
	}
}
