package gvision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

// Client wraps the Cloud Vision images:annotate API.
type Client struct {
	service       *vision.Service
	languageHints []string
}

// New creates a Vision client from cfg.
func New(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	case cfg.CredentialsPath != "":
		data, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("gvision: failed to read credentials file: %w", err)
		}
		tokenPath := cfg.TokenPath
		if tokenPath == "" {
			tokenPath = defaultTokenPath
		}
		ts, err := tokenSourceFromJSON(ctx, data, tokenPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithTokenSource(ts))
	}

	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gvision: failed to create vision service: %w", err)
	}
	return &Client{service: svc, languageHints: cfg.LanguageHints}, nil
}

// tokenSourceFromJSON accepts a service account key or OAuth desktop
// credentials paired with a previously issued token.
func tokenSourceFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, vision.CloudVisionScope)
	if err == nil {
		return jwtConfig.TokenSource(ctx), nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("gvision: unsupported credentials format: %w", err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("gvision: OAuth desktop credentials need a token at %s: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("gvision: failed to parse token: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{vision.CloudVisionScope},
		Endpoint:     google.Endpoint,
	}
	return oauthConfig.TokenSource(ctx, &tok), nil
}

// Recognize runs document text detection on image.
func (c *Client) Recognize(ctx context.Context, image []byte) (Result, error) {
	if len(image) == 0 {
		return Result{}, ErrEmptyImage
	}

	req := &vision.AnnotateImageRequest{
		Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(image)},
		Features: []*vision.Feature{{Type: featureDocumentText}},
	}
	if len(c.languageHints) > 0 {
		req.ImageContext = &vision.ImageContext{LanguageHints: c.languageHints}
	}

	batch, err := c.service.Images.Annotate(&vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{req},
	}).Context(ctx).Do()
	if err != nil {
		return Result{}, fmt.Errorf("gvision: annotate failed: %w", err)
	}
	if len(batch.Responses) == 0 {
		return Result{}, nil
	}

	resp := batch.Responses[0]
	if resp.Error != nil && resp.Error.Code != 0 {
		return Result{}, fmt.Errorf("gvision: annotate failed: code %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if resp.FullTextAnnotation == nil {
		return Result{}, nil
	}

	return Result{
		Text:       resp.FullTextAnnotation.Text,
		Confidence: meanConfidence(resp.FullTextAnnotation.Pages),
	}, nil
}

func meanConfidence(pages []*vision.Page) float64 {
	if len(pages) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pages {
		sum += p.Confidence
	}
	return sum / float64(len(pages)) * 100
}
