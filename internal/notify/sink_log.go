package notify

import (
	"context"

	"gigmatch/internal/common/logger"
	"gigmatch/internal/models"
)

// LogSink writes every notification to the structured log. Always safe
// to enable; the default sink in development.
type LogSink struct {
	log logger.Logger
}

func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, n models.Notification) error {
	s.log.Info("notification", map[string]interface{}{
		"notificationId": n.ID,
		"actorId":        n.ActorID,
		"type":           n.Type,
		"message":        n.Message,
	})
	return nil
}
