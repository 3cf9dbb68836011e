package http

import (
	"errors"
	"net/http"

	"notes-to-tasks/internal/suggestion"
	pkgErrors "notes-to-tasks/pkg/errors"
)

var (
	errTextTooLong          = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is too long")
	errNoFeedbackItems      = pkgErrors.NewHTTPError(http.StatusBadRequest, "items must not be empty")
	errTooManyFeedbackItems = pkgErrors.NewHTTPError(http.StatusBadRequest, "too many feedback items")
	errMissingImage         = pkgErrors.NewHTTPError(http.StatusBadRequest, "image file is required")
	errImageTooLarge        = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "image exceeds 10 MiB")
	errNotAnImage           = pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "file is not an image")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	case errors.Is(err, suggestion.ErrEmptyImage):
		return errMissingImage
	case errors.Is(err, suggestion.ErrEmptyFeedback):
		return errNoFeedbackItems
	default:
		return pkgErrors.ErrInternalServerError
	}
}
