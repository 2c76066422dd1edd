package trigger

import (
	"encoding/json"
	"time"

	"botforge/internal/entity"
)

type CreateTriggerRequest struct {
	Text         string          `json:"text" validate:"required,min=1,max=256"`
	Category     string          `json:"category" validate:"omitempty,max=64"`
	ResponseType string          `json:"responseType" validate:"required"`
	ResponseData json.RawMessage `json:"responseData" validate:"required"`
}

type TriggerResponse struct {
	ID           string                 `json:"id"`
	Text         string                 `json:"text"`
	Category     string                 `json:"category,omitempty"`
	ResponseType entity.ResponseKind    `json:"responseType"`
	ResponseData entity.ResponsePayload `json:"responseData"`
	Preview      string                 `json:"preview"`
	Created      time.Time              `json:"created"`
	Usage        int                    `json:"usage"`
}

type TriggerListResponse struct {
	Triggers []TriggerResponse `json:"triggers"`
	Total    int               `json:"total"`
}
