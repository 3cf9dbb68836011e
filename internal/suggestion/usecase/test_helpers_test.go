package usecase

import (
	"context"
	"testing"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/internal/suggestion/heuristic"
	"notes-to-tasks/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockExtractor stands in for the AI extractor.
type mockExtractor struct {
	suggestions []model.TaskSuggestion
	err         error
	calls       int
	lastSrc     suggestion.Source
}

func (m *mockExtractor) Name() string { return "ai" }

func (m *mockExtractor) Extract(ctx context.Context, src suggestion.Source) ([]model.TaskSuggestion, error) {
	m.calls++
	m.lastSrc = src
	return m.suggestions, m.err
}

type mockOCR struct {
	result model.OCRResult
	err    error
}

func (m *mockOCR) Recognize(ctx context.Context, image []byte) (model.OCRResult, error) {
	return m.result, m.err
}

func newHeuristic(t *testing.T) *heuristic.Extractor {
	t.Helper()
	r, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return heuristic.New(r)
}

var testScope = model.Scope{UserID: "u-1", Username: "tester"}
