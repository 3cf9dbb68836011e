package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"notes-to-tasks/pkg/gemini"
	"notes-to-tasks/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          make([]gemini.Content, len(req.Messages)),
		Temperature:       req.Temperature,
		TopP:              req.TopP,
		TopK:              req.TopK,
		MaxTokens:         req.MaxTokens,
		ResponseMIMEType:  req.ResponseMIMEType,
		SafetyThreshold:   req.SafetyThreshold,
	}
	for i := range req.Messages {
		geminiReq.Messages[i] = *convertToGeminiContent(&req.Messages[i])
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		if errors.Is(err, gemini.ErrContentBlocked) {
			return nil, fmt.Errorf("%w: %w", ErrContentBlocked, err)
		}
		return nil, err
	}

	content := Message{Role: resp.Content.Role}
	for _, p := range resp.Content.Parts {
		content.Parts = append(content.Parts, Part{Text: p.Text})
	}

	return &Response{
		Content:      content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// The same adapter serves every OpenAI-compatible vendor under its own name.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter reported under name
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openAIReq := &openai.Request{
		SystemInstruction: convertToOpenAIContent(req.SystemInstruction),
		Messages:          make([]openai.Content, len(req.Messages)),
		Temperature:       req.Temperature,
		TopP:              req.TopP,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.ResponseMIMEType == "application/json",
	}
	for i := range req.Messages {
		openAIReq.Messages[i] = *convertToOpenAIContent(&req.Messages[i])
	}

	resp, err := a.client.GenerateContent(ctx, openAIReq)
	if err != nil {
		if errors.Is(err, openai.ErrContentFiltered) {
			return nil, fmt.Errorf("%w: %w", ErrContentBlocked, err)
		}
		return nil, err
	}

	content := Message{Role: resp.Content.Role}
	for _, p := range resp.Content.Parts {
		content.Parts = append(content.Parts, Part{Text: p.Text})
	}

	return &Response{
		Content:      content,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.InlineData != nil {
			parts[i].InlineData = &gemini.Blob{MimeType: p.InlineData.MimeType, Data: p.InlineData.Data}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

// Conversion helpers for OpenAI-compatible APIs
func convertToOpenAIContent(msg *Message) *openai.Content {
	if msg == nil {
		return nil
	}
	parts := make([]openai.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openai.Part{Text: p.Text}
		if p.InlineData != nil {
			parts[i].Image = &openai.Image{MimeType: p.InlineData.MimeType, Data: p.InlineData.Data}
		}
	}
	return &openai.Content{Role: msg.Role, Parts: parts}
}
