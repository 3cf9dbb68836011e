package http

import (
	"time"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
)

// --- Request DTOs ---

type suggestReq struct {
	Text          string `json:"text"           binding:"required"`
	HeuristicOnly bool   `json:"heuristic_only"`
}

func (r suggestReq) validate() error {
	if len(r.Text) > maxTextLength {
		return errTextTooLong
	}
	return nil
}

func (r suggestReq) toInput() suggestion.SuggestTextInput {
	return suggestion.SuggestTextInput{
		Text:          r.Text,
		HeuristicOnly: r.HeuristicOnly,
	}
}

// ---

type suggestionDTO struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags"`
}

func (d suggestionDTO) toModel() model.TaskSuggestion {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.TaskSuggestion{
		Title:       d.Title,
		Description: d.Description,
		Priority:    model.Priority(d.Priority),
		DueDate:     d.DueDate,
		Tags:        tags,
	}
}

type feedbackItemReq struct {
	Suggestion suggestionDTO `json:"suggestion"`
	IsAccurate bool          `json:"is_accurate"`
	Comment    string        `json:"comment"`
}

type feedbackReq struct {
	Items []feedbackItemReq `json:"items" binding:"required"`
}

func (r feedbackReq) validate() error {
	if len(r.Items) == 0 {
		return errNoFeedbackItems
	}
	if len(r.Items) > maxFeedbackSize {
		return errTooManyFeedbackItems
	}
	return nil
}

func (r feedbackReq) toInput() suggestion.FeedbackInput {
	items := make([]suggestion.FeedbackItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = suggestion.FeedbackItem{
			Suggestion: item.Suggestion.toModel(),
			IsAccurate: item.IsAccurate,
			Comment:    item.Comment,
		}
	}
	return suggestion.FeedbackInput{Items: items}
}

// --- Response DTOs ---

type suggestResp struct {
	Suggestions    []model.TaskSuggestion `json:"suggestions"`
	Strategy       string                 `json:"strategy"`
	Fallback       bool                   `json:"fallback"`
	FallbackReason string                 `json:"fallback_reason,omitempty"`
	ExtractedText  string                 `json:"extracted_text,omitempty"`
}

func (h *handler) newSuggestResp(out suggestion.SuggestOutput) suggestResp {
	suggestions := out.Suggestions
	if suggestions == nil {
		suggestions = []model.TaskSuggestion{}
	}
	return suggestResp{
		Suggestions:    suggestions,
		Strategy:       string(out.Strategy),
		Fallback:       out.Fallback,
		FallbackReason: out.FallbackReason,
		ExtractedText:  out.ExtractedText,
	}
}

type feedbackResp struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (h *handler) newFeedbackResp(out suggestion.FeedbackOutput) feedbackResp {
	return feedbackResp{ID: out.ID, Message: out.Message}
}
