package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

const (
	requestRetries   = 2
	requestRetryWait = 200 * time.Millisecond
	userAgent        = "go-note-sync"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	// refreshMu serializes refreshes so that concurrent callers do not burn
	// a rotated refresh token twice.
	refreshMu sync.Mutex

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. adapterCfg.RefreshToken seeds the token pair; the first call to
// GetAccessToken exchanges it for an access token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Timeout:    adapterCfg.RequestTimeout,
		RetryCount: requestRetries,
		RetryWait:  requestRetryWait,
		UserAgent:  userAgent,
	})

	return &httpServerAdapter{
		client:       client,
		refreshToken: strings.TrimSpace(adapterCfg.RefreshToken),
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) tokens() (access, refresh string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.accessToken, h.refreshToken
}

func (h *httpServerAdapter) setTokens(access, refresh string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.accessToken = strings.TrimSpace(access)
	if refresh != "" {
		h.refreshToken = strings.TrimSpace(refresh)
	}
}

// authedRequest returns a request carrying a fresh bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}
