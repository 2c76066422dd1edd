package chatService

import (
	"botforge/internal/api/chat"
	"botforge/internal/entity"
	contextPkg "botforge/pkg/context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Resolve scans the triggers in store order and returns the first one whose
// lower-cased text contains the message or is contained by it. The
// bidirectional test is deliberately loose; insertion order is the
// tie-break, not specificity. A match bumps the trigger's usage counter
// here, so every caller counts, whichever path it arrives by.
func (s *chatService) Resolve(message string) (entity.Trigger, bool) {
	lowerMessage := strings.ToLower(message)

	for _, trigger := range s.store.Triggers() {
		lowerTrigger := strings.ToLower(trigger.Text)
		if strings.Contains(lowerMessage, lowerTrigger) || strings.Contains(lowerTrigger, lowerMessage) {
			if s.store.IncrementUsage(trigger.ID) {
				trigger.Usage++
			}
			return trigger, true
		}
	}

	return entity.Trigger{}, false
}

func (s *chatService) Simulate(ctx context.Context, message string) (chat.Reply, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(message) == "" {
		return chat.Reply{}, chat.ErrEmptyMessage
	}

	trigger, ok := s.Resolve(message)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"message":    message,
		}).Debug("No trigger matched message")

		return chat.Reply{
			Matched: false,
			Reply:   chat.FallbackReply,
		}, nil
	}

	if err := s.flusher.Flush(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to flush store after match")
	}

	return chat.Reply{
		Matched:      true,
		TriggerID:    trigger.ID,
		TriggerText:  trigger.Text,
		ResponseType: trigger.ResponseType,
		Reply:        s.renderer.Render(trigger),
	}, nil
}
