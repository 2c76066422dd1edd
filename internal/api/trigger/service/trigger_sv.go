package triggerService

import (
	"botforge/internal/api/chat"
	"botforge/internal/api/trigger"
	"botforge/internal/entity"
	contextPkg "botforge/pkg/context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *triggerService) CreateTrigger(ctx context.Context, req trigger.CreateTriggerRequest) (trigger.TriggerResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return trigger.TriggerResponse{}, trigger.ErrEmptyTriggerText
	}

	kind := entity.ResponseKind(req.ResponseType)
	payload, err := entity.DecodePayload(kind, req.ResponseData)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"response_type": req.ResponseType,
			"error":         err.Error(),
		}).Warn("Malformed response payload")
		return trigger.TriggerResponse{}, trigger.ErrIncompleteResponse(err.Error())
	}

	if !knownKind(kind) {
		return trigger.TriggerResponse{}, trigger.ErrUnknownResponseType
	}

	if err := payload.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"response_type": req.ResponseType,
			"error":         err.Error(),
		}).Warn("Incomplete response payload")
		return trigger.TriggerResponse{}, trigger.ErrIncompleteResponse(err.Error())
	}

	applyDefaults(payload)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return trigger.TriggerResponse{}, trigger.ErrCreateTrigger
	}

	record := entity.Trigger{
		ID:           id,
		Text:         text,
		Category:     req.Category,
		ResponseType: kind,
		ResponseData: payload,
		Created:      time.Now(),
		Usage:        0,
	}

	s.store.AddTrigger(record)
	s.flushQuietly(ctx, requestID)

	return toResponse(record), nil
}

func (s *triggerService) GetAllTriggers(ctx context.Context) (*trigger.TriggerListResponse, error) {
	triggers := s.store.Triggers()

	list := &trigger.TriggerListResponse{
		Triggers: make([]trigger.TriggerResponse, 0, len(triggers)),
		Total:    len(triggers),
	}
	for _, record := range triggers {
		list.Triggers = append(list.Triggers, toResponse(record))
	}

	return list, nil
}

func (s *triggerService) GetTriggerByID(ctx context.Context, id string) (trigger.TriggerResponse, error) {
	record, ok := s.store.TriggerByID(id)
	if !ok {
		return trigger.TriggerResponse{}, trigger.ErrTriggerNotFound
	}
	return toResponse(record), nil
}

func (s *triggerService) DeleteTrigger(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.store.DeleteTrigger(id) {
		return trigger.ErrTriggerNotFound
	}

	s.flushQuietly(ctx, requestID)
	return nil
}

// TestTrigger runs the simulation with the trigger's own text, the same
// path a live chat message takes (usage increments too).
func (s *triggerService) TestTrigger(ctx context.Context, id string) (chat.Reply, error) {
	record, ok := s.store.TriggerByID(id)
	if !ok {
		return chat.Reply{}, trigger.ErrTriggerNotFound
	}

	return s.chatService.Simulate(ctx, record.Text)
}

func (s *triggerService) SeedSampleTriggers(ctx context.Context) (*trigger.TriggerListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	samples := []struct {
		text     string
		category string
		kind     entity.ResponseKind
		payload  entity.ResponsePayload
	}{
		{"hello", "greeting", entity.ResponseText, &entity.TextPayload{Text: "Hello! How can I help you today?"}},
		{"contact", "contact", entity.ResponseText, &entity.TextPayload{Text: "You can reach us at contact@company.com or call (555) 123-4567"}},
		{"website", "info", entity.ResponseURL, &entity.URLPayload{URL: "https://example.com", LinkText: "Visit our website", NewTab: true}},
	}

	list := &trigger.TriggerListResponse{}
	for _, sample := range samples {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate ULID")
			return nil, trigger.ErrCreateTrigger
		}

		record := entity.Trigger{
			ID:           id,
			Text:         sample.text,
			Category:     sample.category,
			ResponseType: sample.kind,
			ResponseData: sample.payload,
			Created:      time.Now(),
		}
		s.store.AddTrigger(record)
		list.Triggers = append(list.Triggers, toResponse(record))
	}
	list.Total = len(list.Triggers)

	s.flushQuietly(ctx, requestID)
	return list, nil
}

func (s *triggerService) flushQuietly(ctx context.Context, requestID string) {
	if err := s.flusher.Flush(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to flush store")
	}
}

func knownKind(kind entity.ResponseKind) bool {
	switch kind {
	case entity.ResponseText, entity.ResponseURL, entity.ResponseDocument,
		entity.ResponseEmail, entity.ResponseQuote, entity.ResponseCSV,
		entity.ResponseHTML, entity.ResponseJavaScript, entity.ResponseTemplate:
		return true
	}
	return false
}

// applyDefaults fills the creation-time fallbacks of optional fields.
func applyDefaults(payload entity.ResponsePayload) {
	switch data := payload.(type) {
	case *entity.URLPayload:
		if data.LinkText == "" {
			data.LinkText = data.URL
		}
	case *entity.DocumentPayload:
		if data.Title == "" {
			data.Title = "Document"
		}
	case *entity.CSVPayload:
		if data.DisplayFormat == "" {
			data.DisplayFormat = entity.DisplayTable
		}
	case *entity.TemplatePayload:
		if data.ProjectName == "" {
			data.ProjectName = "My Project"
		}
	}
}

func toResponse(record entity.Trigger) trigger.TriggerResponse {
	return trigger.TriggerResponse{
		ID:           record.ID,
		Text:         record.Text,
		Category:     record.Category,
		ResponseType: record.ResponseType,
		ResponseData: record.ResponseData,
		Preview:      responsePreview(record),
		Created:      record.Created,
		Usage:        record.Usage,
	}
}

// responsePreview is the one-line summary shown in trigger listings.
func responsePreview(record entity.Trigger) string {
	switch data := record.ResponseData.(type) {
	case *entity.TextPayload:
		if len(data.Text) > 100 {
			return data.Text[:100] + "..."
		}
		return data.Text
	case *entity.URLPayload:
		return fmt.Sprintf("Link to: %s", data.URL)
	case *entity.DocumentPayload:
		return fmt.Sprintf("Document: %s", data.Title)
	case *entity.EmailPayload:
		return fmt.Sprintf("Email: %s", data.Subject)
	case *entity.QuotePayload:
		return "Quote template"
	case *entity.CSVPayload:
		return fmt.Sprintf("CSV data from: %s", data.File)
	case *entity.HTMLPayload:
		return "HTML code block"
	case *entity.JavaScriptPayload:
		if data.JSFunction != "" {
			return fmt.Sprintf("JavaScript: %s", data.JSFunction)
		}
		return "JavaScript: Custom function"
	case *entity.TemplatePayload:
		return fmt.Sprintf("%s template for %s", data.TemplateType, data.ProjectName)
	default:
		return "Unknown response type"
	}
}
