package trigger

import "botforge/pkg/response"

var (
	ErrTriggerNotFound     = response.NewError(404, "trigger not found")
	ErrEmptyTriggerText    = response.NewError(400, "trigger text is required")
	ErrUnknownResponseType = response.NewError(400, "unknown response type")
	ErrCreateTrigger       = response.NewError(500, "failed to create trigger")
)

// ErrIncompleteResponse names the missing payload precondition so the caller
// knows which field to fill in.
func ErrIncompleteResponse(reason string) error {
	return response.NewError(400, "incomplete response data: "+reason)
}
