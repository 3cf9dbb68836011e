package gvision

import (
	"errors"
	"net/http"
)

// ErrEmptyImage is returned when Recognize is called without image bytes.
var ErrEmptyImage = errors.New("gvision: image is empty")

const (
	featureDocumentText = "DOCUMENT_TEXT_DETECTION"
	defaultTokenPath    = "token.json"
)

// Config selects how the client authenticates. The first non-empty of
// HTTPClient, APIKey and CredentialsPath wins; with none set the
// application default credentials are used.
type Config struct {
	HTTPClient      *http.Client
	APIKey          string
	CredentialsPath string
	// TokenPath is read when CredentialsPath holds OAuth desktop credentials.
	TokenPath     string
	LanguageHints []string
}

// Result is a transcription with its mean page confidence on a 0-100 scale.
type Result struct {
	Text       string
	Confidence float64
}
