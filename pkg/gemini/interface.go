package gemini

import "context"

// IGemini is a generateContent client. Requests may mix text and inline
// image parts and carry a safety threshold; a prompt or candidate withheld
// by the safety filters comes back as ErrContentBlocked.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model is the model name sent in the request path.
	Model() string
}

// New validates cfg, filling the default model, endpoint and HTTP client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
