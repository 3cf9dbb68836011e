package suggestion

import (
	"context"

	"notes-to-tasks/internal/model"
)

// UseCase turns free-form notes into task suggestions.
type UseCase interface {
	// SuggestFromText tries the AI extractor and falls back to the heuristic one.
	// Extraction failures never surface as errors.
	SuggestFromText(ctx context.Context, sc model.Scope, input SuggestTextInput) (SuggestOutput, error)

	// SuggestFromImage tries AI vision, then OCR followed by the heuristic extractor.
	SuggestFromImage(ctx context.Context, sc model.Scope, input SuggestImageInput) (SuggestOutput, error)

	// SubmitFeedback records whether suggestions were accurate.
	SubmitFeedback(ctx context.Context, sc model.Scope, input FeedbackInput) (FeedbackOutput, error)
}

// Extractor produces task suggestions from a note.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, src Source) ([]model.TaskSuggestion, error)
}

// OCR transcribes an image of a note.
type OCR interface {
	Recognize(ctx context.Context, image []byte) (model.OCRResult, error)
}
