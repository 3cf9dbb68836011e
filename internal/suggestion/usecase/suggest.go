package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
)

// SuggestFromText tries the AI extractor once and falls back to the heuristic one.
func (uc *implUseCase) SuggestFromText(ctx context.Context, sc model.Scope, input suggestion.SuggestTextInput) (suggestion.SuggestOutput, error) {
	src := suggestion.Source{Text: input.Text, Now: referenceTime(input.Now)}

	var reason string
	switch {
	case input.HeuristicOnly:
		reason = reasonHeuristicOnly
	case uc.ai == nil:
		reason = suggestion.ErrAINotConfigured.Error()
	case strings.TrimSpace(input.Text) == "":
		reason = suggestion.ErrEmptyText.Error()
	default:
		suggestions, err := uc.ai.Extract(ctx, src)
		if err == nil {
			uc.l.Infof(ctx, "suggestion.usecase.SuggestFromText: user=%s strategy=ai suggestions=%d", sc.UserID, len(suggestions))
			return suggestion.SuggestOutput{Suggestions: suggestions, Strategy: suggestion.StrategyAI}, nil
		}
		uc.l.Warnf(ctx, "suggestion.usecase.SuggestFromText.ai.Extract: %v", err)
		reason = fallbackReason(err)
	}

	out := uc.fallback(src, reason)
	uc.l.Infof(ctx, "suggestion.usecase.SuggestFromText: user=%s strategy=heuristic reason=%q suggestions=%d", sc.UserID, reason, len(out.Suggestions))
	return out, nil
}

// SuggestFromImage asks the AI extractor to read the image. When that fails
// the image is transcribed by OCR and the text goes through the heuristic path.
func (uc *implUseCase) SuggestFromImage(ctx context.Context, sc model.Scope, input suggestion.SuggestImageInput) (suggestion.SuggestOutput, error) {
	if len(input.Image) == 0 {
		return suggestion.SuggestOutput{}, suggestion.ErrEmptyImage
	}
	now := referenceTime(input.Now)

	reason := suggestion.ErrAINotConfigured.Error()
	if uc.ai != nil {
		suggestions, err := uc.ai.Extract(ctx, suggestion.Source{Image: input.Image, MimeType: input.MimeType, Now: now})
		if err == nil {
			uc.l.Infof(ctx, "suggestion.usecase.SuggestFromImage: user=%s strategy=ai suggestions=%d", sc.UserID, len(suggestions))
			return suggestion.SuggestOutput{Suggestions: suggestions, Strategy: suggestion.StrategyAI}, nil
		}
		uc.l.Warnf(ctx, "suggestion.usecase.SuggestFromImage.ai.Extract: %v", err)
		reason = fallbackReason(err)
	}

	if uc.ocr == nil {
		return emptyFallback(reason + "; " + reasonOCRUnavailable), nil
	}

	res, err := uc.ocr.Recognize(ctx, input.Image)
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.SuggestFromImage.ocr.Recognize: %v", err)
		return emptyFallback(reason + "; " + reasonOCRUnavailable), nil
	}

	out := uc.fallback(suggestion.Source{Text: res.Text, Now: now}, reason)
	out.ExtractedText = res.Text
	uc.l.Infof(ctx, "suggestion.usecase.SuggestFromImage: user=%s strategy=heuristic ocr_confidence=%.1f suggestions=%d", sc.UserID, res.Confidence, len(out.Suggestions))
	return out, nil
}

func (uc *implUseCase) fallback(src suggestion.Source, reason string) suggestion.SuggestOutput {
	suggestions := uc.heuristic.ExtractText(src.Text, src.Now)
	if uc.cfg.EnrichFallback {
		suggestions = enrich(suggestions, uc.cfg.FallbackDescription)
	}
	return suggestion.SuggestOutput{
		Suggestions:    suggestions,
		Strategy:       suggestion.StrategyHeuristic,
		Fallback:       true,
		FallbackReason: reason,
	}
}

func emptyFallback(reason string) suggestion.SuggestOutput {
	return suggestion.SuggestOutput{
		Suggestions:    []model.TaskSuggestion{},
		Strategy:       suggestion.StrategyHeuristic,
		Fallback:       true,
		FallbackReason: reason,
	}
}

// fallbackReason names the failure kind rather than echoing provider output.
func fallbackReason(err error) string {
	for _, kind := range []error{
		suggestion.ErrAINotConfigured,
		suggestion.ErrTimeout,
		suggestion.ErrContentBlocked,
		suggestion.ErrEmptyResponse,
		suggestion.ErrParseFailure,
		suggestion.ErrInvalidSuggestion,
		suggestion.ErrTransport,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return err.Error()
}

// referenceTime pins "now" once per request so both extractors agree on it.
func referenceTime(now time.Time) time.Time {
	if now.IsZero() {
		return time.Now()
	}
	return now
}
