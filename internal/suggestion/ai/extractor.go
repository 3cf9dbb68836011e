package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/pkg/llmprovider"
)

// Name implements suggestion.Extractor.
func (e *Extractor) Name() string {
	return Name
}

// Extract implements suggestion.Extractor. An image in src takes precedence
// over its text. Every error is an *Error.
func (e *Extractor) Extract(ctx context.Context, src suggestion.Source) ([]model.TaskSuggestion, error) {
	now := src.ReferenceTime()

	var req *llmprovider.Request
	switch {
	case len(src.Image) > 0:
		req = e.imageRequest(src.Image, src.MimeType, now)
	case strings.TrimSpace(src.Text) != "":
		req = e.textRequest(src.Text, now)
	default:
		return nil, &Error{Kind: suggestion.ErrEmptyText}
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	resp, err := e.generator.GenerateContent(ctx, req)
	if err != nil {
		e.l.Warnf(ctx, "ai.Extract.GenerateContent: %v", err)
		return nil, classifyGenerateError(err)
	}

	reply := resp.Text()
	if strings.TrimSpace(reply) == "" {
		return nil, &Error{Kind: suggestion.ErrEmptyResponse, Provider: resp.ProviderName}
	}

	items, err := ParseReply(reply)
	if err != nil {
		e.l.Warnf(ctx, "ai.Extract.ParseReply: provider=%s reply=%q: %v", resp.ProviderName, reply, err)
		return nil, &Error{Kind: suggestion.ErrParseFailure, Provider: resp.ProviderName, Err: err}
	}

	suggestions := make([]model.TaskSuggestion, 0, len(items))
	for i, item := range items {
		s, err := e.toSuggestion(ctx, item, now)
		if err != nil {
			return nil, &Error{
				Kind:     suggestion.ErrInvalidSuggestion,
				Provider: resp.ProviderName,
				Err:      fmt.Errorf("item %d: %w", i, err),
			}
		}
		suggestions = append(suggestions, s)
	}

	e.l.Infof(ctx, "ai.Extract: provider=%s model=%s suggestions=%d", resp.ProviderName, resp.ModelName, len(suggestions))
	return suggestions, nil
}

func (e *Extractor) textRequest(text string, now time.Time) *llmprovider.Request {
	local := now.In(e.dates.Location())
	prompt := fmt.Sprintf(textPromptTemplate, local.Format(time.RFC3339), local.Weekday(), text)
	return e.newRequest(llmprovider.Part{Text: prompt})
}

func (e *Extractor) imageRequest(image []byte, mimeType string, now time.Time) *llmprovider.Request {
	if mimeType == "" {
		mimeType = mimetype.Detect(image).String()
	}
	local := now.In(e.dates.Location())
	prompt := fmt.Sprintf(imagePromptTemplate, local.Format(time.RFC3339), local.Weekday())
	return e.newRequest(
		llmprovider.Part{Text: prompt},
		llmprovider.Part{InlineData: &llmprovider.Blob{MimeType: mimeType, Data: image}},
	)
}

func (e *Extractor) newRequest(parts ...llmprovider.Part) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: SystemPrompt}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: parts},
		},
		Temperature:      e.cfg.Temperature,
		TopP:             e.cfg.TopP,
		TopK:             e.cfg.TopK,
		MaxTokens:        e.cfg.MaxTokens,
		ResponseMIMEType: responseMIMEType,
		SafetyThreshold:  llmprovider.SafetyBlockOnlyHigh,
	}
}
