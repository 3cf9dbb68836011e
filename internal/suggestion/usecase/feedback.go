package usecase

import (
	"context"

	"github.com/google/uuid"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
)

// SubmitFeedback acknowledges the user's verdict on a batch of suggestions.
func (uc *implUseCase) SubmitFeedback(ctx context.Context, sc model.Scope, input suggestion.FeedbackInput) (suggestion.FeedbackOutput, error) {
	if len(input.Items) == 0 {
		return suggestion.FeedbackOutput{}, suggestion.ErrEmptyFeedback
	}

	accurate := 0
	for _, item := range input.Items {
		if item.IsAccurate {
			accurate++
		}
	}

	id := uuid.NewString()
	uc.l.Infof(ctx, "suggestion.usecase.SubmitFeedback: id=%s user=%s items=%d accurate=%d", id, sc.UserID, len(input.Items), accurate)

	return suggestion.FeedbackOutput{ID: id, Message: FeedbackMessage}, nil
}
