package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"notes-to-tasks/config"
	"notes-to-tasks/pkg/log"
	"notes-to-tasks/pkg/telegram"
)

const (
	webhookPath         = "/webhook/telegram"
	tunnelLookupTries   = 10
	tunnelLookupBackoff = 3 * time.Second
)

var errNoTunnel = errors.New("ngrok has no active tunnels")

// tunnelList is the /api/tunnels response of the ngrok agent API.
type tunnelList struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// registerWebhook points the bot at the configured webhook URL or, failing
// that, at the public URL of a local ngrok tunnel. Failures only log.
func registerWebhook(ctx context.Context, l log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.TunnelAPIURL != "" {
		publicURL, err := lookupTunnelURL(ctx, &http.Client{Timeout: 5 * time.Second}, cfg.TunnelAPIURL, tunnelLookupTries, tunnelLookupBackoff)
		if err != nil {
			l.Warnf(ctx, "Could not detect tunnel URL: %v", err)
			return
		}
		webhookURL = strings.TrimSuffix(publicURL, "/") + webhookPath
		l.Infof(ctx, "Auto-detected tunnel URL: %s", webhookURL)
	}
	if webhookURL == "" {
		l.Warn(ctx, "Telegram webhook URL not configured, skipping registration")
		return
	}

	if err := bot.SetWebhook(webhookURL); err != nil {
		l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	l.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}

// lookupTunnelURL polls the ngrok agent API until a tunnel shows up,
// preferring https. The agent often starts after this service.
func lookupTunnelURL(ctx context.Context, client *http.Client, apiBase string, tries int, backoff time.Duration) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= tries; attempt++ {
		publicURL, err := fetchTunnelURL(ctx, client, strings.TrimSuffix(apiBase, "/")+"/api/tunnels")
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt == tries {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
	}
	return "", fmt.Errorf("tunnel lookup failed after %d attempts: %w", tries, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create tunnel API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var list tunnelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("failed to decode tunnel API response: %w", err)
	}

	for _, t := range list.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(list.Tunnels) > 0 {
		return list.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnel
}
