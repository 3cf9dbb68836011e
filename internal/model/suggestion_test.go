package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"notes-to-tasks/internal/model"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   model.Priority
		wantOK bool
	}{
		{in: "low", want: model.PriorityLow, wantOK: true},
		{in: " High ", want: model.PriorityHigh, wantOK: true},
		{in: "MEDIUM", want: model.PriorityMedium, wantOK: true},
		{in: "p1", want: model.Priority("p1"), wantOK: false},
		{in: "", want: model.Priority(""), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := model.ParsePriority(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParsePriority(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTaskSuggestionJSONOmitsEmptyOptionalFields(t *testing.T) {
	raw, err := json.Marshal(model.TaskSuggestion{Title: "Buy milk", Priority: model.PriorityLow, Tags: []string{}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(raw)
	if strings.Contains(got, "dueDate") || strings.Contains(got, "description") {
		t.Errorf("expected optional fields to be omitted, got %s", got)
	}
	if !strings.Contains(got, `"tags":[]`) {
		t.Errorf("expected empty tags array, got %s", got)
	}
}
