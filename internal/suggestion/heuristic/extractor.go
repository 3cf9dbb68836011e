package heuristic

import (
	"context"
	"strings"
	"time"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/pkg/datemath"
)

// Extractor is the keyword-based extractor. It never fails.
type Extractor struct {
	resolver *datemath.Resolver
}

// New returns an Extractor that resolves due dates with resolver.
func New(resolver *datemath.Resolver) *Extractor {
	return &Extractor{resolver: resolver}
}

// Name implements suggestion.Extractor.
func (e *Extractor) Name() string {
	return Name
}

// Extract implements suggestion.Extractor. The error is always nil.
func (e *Extractor) Extract(ctx context.Context, src suggestion.Source) ([]model.TaskSuggestion, error) {
	return e.ExtractText(src.Text, src.ReferenceTime()), nil
}

// ExtractText returns one suggestion per task line of text, in line order.
func (e *Extractor) ExtractText(text string, now time.Time) []model.TaskSuggestion {
	suggestions := []model.TaskSuggestion{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		c := Classify(line)
		if !c.IsTask {
			continue
		}

		s := model.TaskSuggestion{
			Title:    c.Title,
			Priority: c.Priority,
			Tags:     ExtractTags(line),
		}
		if res, ok := e.resolver.Resolve(line, now); ok {
			due := res.At
			s.DueDate = &due
		}
		suggestions = append(suggestions, s)
	}

	return suggestions
}
