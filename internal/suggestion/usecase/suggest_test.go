package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
)

var refTime = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

const note = "Call Dr. Smith urgently tomorrow #health\n- buy milk\nthoughts about the weekend"

func TestSuggestFromText_AISuccessIsReturnedUnmodified(t *testing.T) {
	aiResult := []model.TaskSuggestion{{Title: "From AI", Priority: model.PriorityMedium, Tags: []string{}}}
	ai := &mockExtractor{suggestions: aiResult}
	uc := New(&mockLogger{}, ai, newHeuristic(t), nil, Config{EnrichFallback: true})

	out, err := uc.SuggestFromText(context.Background(), testScope, suggestion.SuggestTextInput{Text: note, Now: refTime})
	if err != nil {
		t.Fatalf("SuggestFromText() error = %v", err)
	}
	if out.Strategy != suggestion.StrategyAI || out.Fallback {
		t.Errorf("unexpected strategy %q fallback=%v", out.Strategy, out.Fallback)
	}
	if !reflect.DeepEqual(out.Suggestions, aiResult) {
		t.Errorf("AI result was modified: %+v", out.Suggestions)
	}
	if !ai.lastSrc.Now.Equal(refTime) || ai.lastSrc.Text != note {
		t.Errorf("AI received unexpected source %+v", ai.lastSrc)
	}
}

func TestSuggestFromText_FallbackMatchesHeuristic(t *testing.T) {
	h := newHeuristic(t)
	want := h.ExtractText(note, refTime)

	tests := []struct {
		name   string
		ai     suggestion.Extractor
		input  suggestion.SuggestTextInput
		reason string
	}{
		{
			name:   "ai timeout",
			ai:     &mockExtractor{err: fmt.Errorf("%w: %w", suggestion.ErrAIExtractionFailed, suggestion.ErrTimeout)},
			input:  suggestion.SuggestTextInput{Text: note, Now: refTime},
			reason: suggestion.ErrTimeout.Error(),
		},
		{
			name:   "ai parse failure",
			ai:     &mockExtractor{err: fmt.Errorf("%w: %w", suggestion.ErrAIExtractionFailed, suggestion.ErrParseFailure)},
			input:  suggestion.SuggestTextInput{Text: note, Now: refTime},
			reason: suggestion.ErrParseFailure.Error(),
		},
		{
			name:   "no ai configured",
			input:  suggestion.SuggestTextInput{Text: note, Now: refTime},
			reason: suggestion.ErrAINotConfigured.Error(),
		},
		{
			name:   "heuristic only",
			ai:     &mockExtractor{},
			input:  suggestion.SuggestTextInput{Text: note, HeuristicOnly: true, Now: refTime},
			reason: reasonHeuristicOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&mockLogger{}, tt.ai, h, nil, Config{EnrichFallback: false})
			out, err := uc.SuggestFromText(context.Background(), testScope, tt.input)
			if err != nil {
				t.Fatalf("SuggestFromText() error = %v", err)
			}
			if out.Strategy != suggestion.StrategyHeuristic || !out.Fallback {
				t.Errorf("unexpected strategy %q fallback=%v", out.Strategy, out.Fallback)
			}
			if out.FallbackReason != tt.reason {
				t.Errorf("FallbackReason = %q, want %q", out.FallbackReason, tt.reason)
			}
			if !reflect.DeepEqual(out.Suggestions, want) {
				t.Errorf("fallback differs from heuristic:\n got %+v\nwant %+v", out.Suggestions, want)
			}
		})
	}
}

func TestSuggestFromText_HeuristicOnlySkipsAI(t *testing.T) {
	ai := &mockExtractor{}
	uc := New(&mockLogger{}, ai, newHeuristic(t), nil, Config{})
	if _, err := uc.SuggestFromText(context.Background(), testScope, suggestion.SuggestTextInput{Text: note, HeuristicOnly: true}); err != nil {
		t.Fatalf("SuggestFromText() error = %v", err)
	}
	if _, err := uc.SuggestFromText(context.Background(), testScope, suggestion.SuggestTextInput{Text: "  "}); err != nil {
		t.Fatalf("SuggestFromText() error = %v", err)
	}
	if ai.calls != 0 {
		t.Errorf("AI extractor called %d times", ai.calls)
	}
}

func TestSuggestFromText_EnrichmentOnlyFillsGaps(t *testing.T) {
	h := newHeuristic(t)
	plain := h.ExtractText(note, refTime)

	uc := New(&mockLogger{}, nil, h, nil, Config{EnrichFallback: true})
	out, err := uc.SuggestFromText(context.Background(), testScope, suggestion.SuggestTextInput{Text: note, Now: refTime})
	if err != nil {
		t.Fatalf("SuggestFromText() error = %v", err)
	}
	if len(out.Suggestions) != len(plain) {
		t.Fatalf("got %d suggestions, want %d", len(out.Suggestions), len(plain))
	}

	for i, s := range out.Suggestions {
		p := plain[i]
		if s.Title != p.Title || s.Priority != p.Priority || !reflect.DeepEqual(s.DueDate, p.DueDate) {
			t.Errorf("enrichment changed core fields: %+v vs %+v", s, p)
		}
		if s.Description != DefaultFallbackDescription {
			t.Errorf("Description = %q", s.Description)
		}
	}
	if !reflect.DeepEqual(out.Suggestions[0].Tags, []string{"health"}) {
		t.Errorf("existing tags must be kept, got %v", out.Suggestions[0].Tags)
	}
	if !reflect.DeepEqual(out.Suggestions[1].Tags, []string{"errands"}) {
		t.Errorf("missing tags should be filled from hints, got %v", out.Suggestions[1].Tags)
	}
	if len(plain[1].Tags) != 0 || plain[1].Description != "" {
		t.Errorf("enrichment mutated its input: %+v", plain[1])
	}
}

func TestSuggestFromImage(t *testing.T) {
	image := []byte("not really a png")
	aiErr := fmt.Errorf("%w: %w", suggestion.ErrAIExtractionFailed, suggestion.ErrContentBlocked)

	t.Run("ai vision", func(t *testing.T) {
		ai := &mockExtractor{suggestions: []model.TaskSuggestion{{Title: "Seen", Priority: model.PriorityLow, Tags: []string{}}}}
		uc := New(&mockLogger{}, ai, newHeuristic(t), &mockOCR{}, Config{})
		out, err := uc.SuggestFromImage(context.Background(), testScope, suggestion.SuggestImageInput{Image: image, MimeType: "image/png", Now: refTime})
		if err != nil {
			t.Fatalf("SuggestFromImage() error = %v", err)
		}
		if out.Strategy != suggestion.StrategyAI || len(out.Suggestions) != 1 {
			t.Errorf("unexpected output %+v", out)
		}
		if string(ai.lastSrc.Image) != string(image) || ai.lastSrc.MimeType != "image/png" {
			t.Errorf("image not passed to AI: %+v", ai.lastSrc)
		}
	})

	t.Run("ocr fallback", func(t *testing.T) {
		ocr := &mockOCR{result: model.OCRResult{Text: note, Confidence: 91}}
		h := newHeuristic(t)
		uc := New(&mockLogger{}, &mockExtractor{err: aiErr}, h, ocr, Config{})
		out, err := uc.SuggestFromImage(context.Background(), testScope, suggestion.SuggestImageInput{Image: image, Now: refTime})
		if err != nil {
			t.Fatalf("SuggestFromImage() error = %v", err)
		}
		if !out.Fallback || out.ExtractedText != note {
			t.Errorf("unexpected output %+v", out)
		}
		if !reflect.DeepEqual(out.Suggestions, h.ExtractText(note, refTime)) {
			t.Errorf("OCR text not run through the heuristic extractor: %+v", out.Suggestions)
		}
	})

	t.Run("no ocr", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockExtractor{err: aiErr}, newHeuristic(t), nil, Config{})
		out, err := uc.SuggestFromImage(context.Background(), testScope, suggestion.SuggestImageInput{Image: image, Now: refTime})
		if err != nil {
			t.Fatalf("SuggestFromImage() error = %v", err)
		}
		if !out.Fallback || out.Suggestions == nil || len(out.Suggestions) != 0 {
			t.Errorf("expected an empty fallback, got %+v", out)
		}
		if !strings.Contains(out.FallbackReason, suggestion.ErrContentBlocked.Error()) {
			t.Errorf("FallbackReason = %q", out.FallbackReason)
		}
	})

	t.Run("ocr failure", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, newHeuristic(t), &mockOCR{err: errors.New("quota exceeded")}, Config{})
		out, err := uc.SuggestFromImage(context.Background(), testScope, suggestion.SuggestImageInput{Image: image})
		if err != nil {
			t.Fatalf("SuggestFromImage() error = %v", err)
		}
		if !out.Fallback || len(out.Suggestions) != 0 {
			t.Errorf("expected an empty fallback, got %+v", out)
		}
	})

	t.Run("empty image", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, newHeuristic(t), nil, Config{})
		if _, err := uc.SuggestFromImage(context.Background(), testScope, suggestion.SuggestImageInput{}); !errors.Is(err, suggestion.ErrEmptyImage) {
			t.Errorf("expected ErrEmptyImage, got %v", err)
		}
	})
}
