package adapter

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// tokenRefreshLeeway is how long before its expiry an access token is
// already considered stale.
const tokenRefreshLeeway = 30 * time.Second

// GetAccessToken implements [TokenSupplier].
func (h *httpServerAdapter) GetAccessToken(ctx context.Context) (string, error) {
	access, _ := h.tokens()
	if access != "" && !utils.TokenExpiresWithin(access, tokenRefreshLeeway) {
		return access, nil
	}

	if err := h.RefreshToken(ctx, false); err != nil {
		return "", err
	}

	access, _ = h.tokens()
	return access, nil
}

// RefreshToken implements [TokenSupplier]. It POSTs the refresh token to
// POST /api/auth/token and stores the returned pair.
func (h *httpServerAdapter) RefreshToken(ctx context.Context, force bool) error {
	h.refreshMu.Lock()
	defer h.refreshMu.Unlock()

	access, refresh := h.tokens()
	if !force && access != "" && !utils.TokenExpiresWithin(access, tokenRefreshLeeway) {
		return nil
	}
	if refresh == "" {
		return ErrNoToken
	}

	var pair models.TokenPair
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{RefreshToken: refresh}).
		SetResult(&pair).
		Post("/api/auth/token")
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.RefreshToken").Msg("token request failed")
		return fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.RefreshToken").Msg("token refresh rejected")
		return err
	}
	if pair.AccessToken == "" {
		return fmt.Errorf("token response: %w", ErrNoToken)
	}

	h.setTokens(pair.AccessToken, pair.RefreshToken)
	h.logger.Debug().Str("func", "httpServerAdapter.RefreshToken").Bool("force", force).Msg("access token refreshed")

	return nil
}

// RegisterDevice implements [DeviceAPI] via POST /api/devices.
func (h *httpServerAdapter) RegisterDevice(ctx context.Context, deviceID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeviceIdentity{DeviceID: deviceID}).
		Post("/api/devices")
	if err != nil {
		return fmt.Errorf("register device request: %w", err)
	}

	return mapHTTPError(resp)
}

// UnregisterDevice implements [DeviceAPI] via DELETE /api/devices/{id}.
func (h *httpServerAdapter) UnregisterDevice(ctx context.Context, deviceID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/api/devices/" + url.PathEscape(deviceID))
	if err != nil {
		return fmt.Errorf("unregister device request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetUser implements [UserAPI] via GET /api/users/me.
func (h *httpServerAdapter) GetUser(ctx context.Context) (*models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	resp, err := req.SetResult(&user).Get("/api/users/me")
	if err != nil {
		return nil, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &user, nil
}

// QueueUploads implements [AttachmentUploader] via POST /api/files/queue.
func (h *httpServerAdapter) QueueUploads(ctx context.Context, uploads []models.AttachmentUpload, tag string) error {
	if len(uploads) == 0 {
		return nil
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.UploadQueueRequest{Tag: tag, Files: uploads}).
		Post("/api/files/queue")
	if err != nil {
		return fmt.Errorf("queue uploads request: %w", err)
	}

	return mapHTTPError(resp)
}
