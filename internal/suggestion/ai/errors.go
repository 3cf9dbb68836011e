package ai

import (
	"context"
	"errors"

	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/pkg/llmprovider"
)

// Error is returned for every failed extraction. It matches
// suggestion.ErrAIExtractionFailed, its Kind and the underlying cause.
type Error struct {
	Kind     error
	Provider string
	Err      error
}

func (e *Error) Error() string {
	msg := "ai: " + e.Kind.Error()
	if e.Provider != "" {
		msg += " (" + e.Provider + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := []error{suggestion.ErrAIExtractionFailed, e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// classifyGenerateError maps a generator failure to an extraction error kind.
func classifyGenerateError(err error) *Error {
	e := &Error{Kind: suggestion.ErrTransport, Err: err}

	var pe *llmprovider.ProviderError
	if errors.As(err, &pe) {
		e.Provider = pe.Provider
	}

	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		e.Kind = suggestion.ErrAINotConfigured
	case errors.Is(err, llmprovider.ErrContentBlocked):
		e.Kind = suggestion.ErrContentBlocked
	case errors.Is(err, context.DeadlineExceeded):
		e.Kind = suggestion.ErrTimeout
	}
	return e
}
