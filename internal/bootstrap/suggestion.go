// Package bootstrap builds the suggestion use case from configuration. It is
// shared by the API server and the CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"notes-to-tasks/config"
	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/internal/suggestion/ai"
	"notes-to-tasks/internal/suggestion/heuristic"
	"notes-to-tasks/internal/suggestion/usecase"
	"notes-to-tasks/pkg/datemath"
	"notes-to-tasks/pkg/gvision"
	"notes-to-tasks/pkg/llmprovider"
	"notes-to-tasks/pkg/log"
)

// Options switch off optional collaborators.
type Options struct {
	DisableAI  bool
	DisableOCR bool
}

// NewSuggestionUseCase wires the heuristic extractor and, when configured,
// the AI extractor and the OCR collaborator.
func NewSuggestionUseCase(ctx context.Context, cfg *config.Config, l log.Logger, opts Options) (suggestion.UseCase, error) {
	var resolverOpts []datemath.Option
	if cfg.Suggestion.MonthFirst {
		resolverOpts = append(resolverOpts, datemath.WithMonthFirst())
	}
	resolver, err := datemath.NewResolver(cfg.Suggestion.Timezone, resolverOpts...)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	var aiExtractor suggestion.Extractor
	if !opts.DisableAI {
		aiExtractor, err = newAIExtractor(ctx, cfg, l)
		if err != nil {
			return nil, err
		}
	}

	var ocr suggestion.OCR
	if cfg.OCR.Enabled && !opts.DisableOCR {
		client, err := gvision.New(ctx, gvision.Config{
			APIKey:          cfg.OCR.APIKey,
			CredentialsPath: cfg.OCR.CredentialsPath,
			LanguageHints:   cfg.OCR.LanguageHints,
		})
		if err != nil {
			l.Warnf(ctx, "bootstrap: OCR not available (optional): %v", err)
		} else {
			ocr = usecase.NewVisionOCR(client)
			l.Info(ctx, "Cloud Vision OCR initialized")
		}
	}

	return usecase.New(l, aiExtractor, heuristic.New(resolver), ocr, usecase.Config{
		EnrichFallback:      cfg.Suggestion.EnrichFallback,
		FallbackDescription: cfg.Suggestion.FallbackDescription,
	}), nil
}

// newAIExtractor returns nil without an error when no provider is enabled.
func newAIExtractor(ctx context.Context, cfg *config.Config, l log.Logger) (suggestion.Extractor, error) {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, l)
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			l.Warn(ctx, "No LLM provider enabled, running heuristic-only")
			return nil, nil
		}
		l.Warnf(ctx, "LLM providers unavailable, running heuristic-only: %v", err)
		return nil, nil
	}

	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)
	l.Infof(ctx, "LLM providers initialized: %v", manager.Providers())

	aiCfg := ai.DefaultConfig()
	aiCfg.Timezone = cfg.Suggestion.Timezone
	if cfg.Suggestion.AITimeout > 0 {
		aiCfg.Timeout = cfg.Suggestion.AITimeout
	}

	extractor, err := ai.New(l, manager, aiCfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return extractor, nil
}
