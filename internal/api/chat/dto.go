package chat

import "botforge/internal/entity"

// FallbackReply is what the simulation answers when no trigger matches.
// This is the caller-side substitute; the matcher itself just reports a miss.
const FallbackReply = "I'm sorry, I don't understand that. Try one of my programmed triggers!"

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=1024"`
}

type Reply struct {
	Matched      bool                `json:"matched"`
	TriggerID    string              `json:"trigger_id,omitempty"`
	TriggerText  string              `json:"trigger_text,omitempty"`
	ResponseType entity.ResponseKind `json:"response_type,omitempty"`
	Reply        string              `json:"reply"`
}
