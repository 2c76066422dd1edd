package entity

import (
	"encoding/json"
	"time"
)

// Trigger is one responder rule: a phrase mapped to a typed response payload.
// Usage counts successful matches and is only ever touched by the matcher.
type Trigger struct {
	ID           string
	Text         string
	Category     string
	ResponseType ResponseKind
	ResponseData ResponsePayload
	Created      time.Time
	Usage        int
}

// triggerJSON is the wire/storage shape. Field names follow the export
// format so backups stay portable.
type triggerJSON struct {
	ID           string          `json:"id"`
	Text         string          `json:"text"`
	Category     string          `json:"category,omitempty"`
	ResponseType ResponseKind    `json:"responseType"`
	ResponseData json.RawMessage `json:"responseData"`
	Created      time.Time       `json:"created"`
	Usage        int             `json:"usage"`
}

func (t Trigger) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(t.ResponseData)
	if err != nil {
		return nil, err
	}

	return json.Marshal(triggerJSON{
		ID:           t.ID,
		Text:         t.Text,
		Category:     t.Category,
		ResponseType: t.ResponseType,
		ResponseData: data,
		Created:      t.Created,
		Usage:        t.Usage,
	})
}

func (t *Trigger) UnmarshalJSON(data []byte) error {
	var raw triggerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	payload, err := DecodePayload(raw.ResponseType, raw.ResponseData)
	if err != nil {
		return err
	}

	t.ID = raw.ID
	t.Text = raw.Text
	t.Category = raw.Category
	t.ResponseType = raw.ResponseType
	t.ResponseData = payload
	t.Created = raw.Created
	t.Usage = raw.Usage

	return nil
}
