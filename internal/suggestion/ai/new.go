package ai

import (
	"context"
	"fmt"
	"time"

	"notes-to-tasks/pkg/datemath"
	"notes-to-tasks/pkg/llmprovider"
	"notes-to-tasks/pkg/log"
)

// Generator is the slice of llmprovider.Manager the extractor needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config holds the generation parameters. Zero Timeout and Timezone take
// their defaults; the sampling fields are sent as given.
type Config struct {
	Timeout     time.Duration
	Timezone    string
	Temperature float64
	TopP        float64
	TopK        int
	MaxTokens   int
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Timeout:     DefaultTimeout,
		Timezone:    DefaultTimezone,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		TopK:        DefaultTopK,
		MaxTokens:   DefaultMaxTokens,
	}
}

// Extractor asks a generative model for task suggestions.
type Extractor struct {
	l         log.Logger
	generator Generator
	dates     *datemath.Parser
	cfg       Config
}

// New creates an Extractor backed by generator.
func New(l log.Logger, generator Generator, cfg Config) (*Extractor, error) {
	if generator == nil {
		return nil, fmt.Errorf("ai: generator is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}

	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ai: %w", err)
	}

	return &Extractor{
		l:         l,
		generator: generator,
		dates:     dates,
		cfg:       cfg,
	}, nil
}
