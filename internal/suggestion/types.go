package suggestion

import (
	"time"

	"notes-to-tasks/internal/model"
)

// Strategy names the extractor that produced a result.
type Strategy string

const (
	StrategyAI        Strategy = "ai"
	StrategyHeuristic Strategy = "heuristic"
)

// Source is what an Extractor reads: text, an image, or both.
type Source struct {
	Text     string
	Image    []byte
	MimeType string
	// Now anchors relative dates. Zero means the current time.
	Now time.Time
}

// ReferenceTime returns Now, or the current time when Now is zero.
func (s Source) ReferenceTime() time.Time {
	if s.Now.IsZero() {
		return time.Now()
	}
	return s.Now
}

// SuggestTextInput is the input for SuggestFromText.
type SuggestTextInput struct {
	Text          string
	HeuristicOnly bool // skip the AI attempt
	Now           time.Time
}

// SuggestImageInput is the input for SuggestFromImage.
type SuggestImageInput struct {
	Image    []byte
	MimeType string // sniffed when empty
	Now      time.Time
}

// SuggestOutput is the ordered list of suggestions and how it was obtained.
type SuggestOutput struct {
	Suggestions    []model.TaskSuggestion
	Strategy       Strategy
	Fallback       bool
	FallbackReason string
	// ExtractedText is the OCR transcription when the image flow used it.
	ExtractedText string
}

// FeedbackItem is the user's verdict on one suggestion.
type FeedbackItem struct {
	Suggestion model.TaskSuggestion
	IsAccurate bool
	Comment    string
}

// FeedbackInput is the input for SubmitFeedback.
type FeedbackInput struct {
	Items []FeedbackItem
}

// FeedbackOutput acknowledges a feedback submission.
type FeedbackOutput struct {
	ID      string
	Message string
}
