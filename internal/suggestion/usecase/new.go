package usecase

import (
	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/internal/suggestion/heuristic"
	pkgLog "notes-to-tasks/pkg/log"
)

// Config controls what the fallback path adds to heuristic suggestions.
type Config struct {
	EnrichFallback      bool
	FallbackDescription string
}

type implUseCase struct {
	l         pkgLog.Logger
	ai        suggestion.Extractor
	heuristic *heuristic.Extractor
	ocr       suggestion.OCR
	cfg       Config
}

// New creates a suggestion UseCase. ai and ocr may be nil: without ai every
// request takes the heuristic path, without ocr an image that ai cannot read
// yields no suggestions.
func New(
	l pkgLog.Logger,
	ai suggestion.Extractor,
	heuristic *heuristic.Extractor,
	ocr suggestion.OCR,
	cfg Config,
) suggestion.UseCase {
	if cfg.FallbackDescription == "" {
		cfg.FallbackDescription = DefaultFallbackDescription
	}
	return &implUseCase{
		l:         l,
		ai:        ai,
		heuristic: heuristic,
		ocr:       ocr,
		cfg:       cfg,
	}
}
