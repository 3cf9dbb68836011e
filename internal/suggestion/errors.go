package suggestion

import "errors"

// Domain-specific errors for the suggestion package.
var (
	// ErrAIExtractionFailed matches every AI extractor failure.
	ErrAIExtractionFailed = errors.New("ai extraction failed")

	ErrTransport         = errors.New("provider transport error")
	ErrTimeout           = errors.New("provider timed out")
	ErrContentBlocked    = errors.New("content blocked by provider")
	ErrParseFailure      = errors.New("reply is not a task list")
	ErrInvalidSuggestion = errors.New("reply contains an invalid suggestion")
	ErrEmptyResponse     = errors.New("provider returned an empty reply")
	ErrAINotConfigured   = errors.New("no ai provider configured")

	ErrEmptyText     = errors.New("text is empty")
	ErrEmptyImage    = errors.New("image is empty")
	ErrEmptyFeedback = errors.New("feedback has no items")
)
