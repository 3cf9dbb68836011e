package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// SafetyBlockOnlyHigh blocks only high-probability harmful content.
const SafetyBlockOnlyHigh = "BLOCK_ONLY_HIGH"

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	TopP              float64
	TopK              int
	MaxTokens         int
	// ResponseMIMEType asks for structured output, e.g. "application/json".
	ResponseMIMEType string
	// SafetyThreshold is honoured by providers that support per-request safety settings.
	SafetyThreshold string
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "model", "system"
	Parts []Part
}

// Part represents a message part (text or inline media)
type Part struct {
	Text       string
	InlineData *Blob
}

// Blob is inline binary media such as a photographed note.
type Blob struct {
	MimeType string
	Data     []byte
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text concatenates the text parts of the response.
func (r *Response) Text() string {
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
