package chat

import "botforge/pkg/response"

var (
	ErrEmptyMessage = response.NewError(400, "message is required")
)
