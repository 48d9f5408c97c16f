package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies the tokens of the reference server.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateTokens(ctx context.Context, user models.User) (models.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DeviceService registers the devices a user syncs from.
type DeviceService interface {
	RegisterDevice(ctx context.Context, userID string, device models.DeviceIdentity) error
	UnregisterDevice(ctx context.Context, userID, deviceID string) error
}

// SyncService holds the server side of the sync protocol.
type SyncService interface {
	// PlanFetch splits the items deviceID has not fetched yet into
	// transfer batches.
	PlanFetch(ctx context.Context, userID, deviceID string) (models.FetchPlan, error)

	// CompleteFetch records that every batch of a plan was delivered.
	CompleteFetch(ctx context.Context, userID, deviceID string, checkpoint uint64) error

	// InitializePush opens a push. A valid vault key is stored unless the
	// user already has one.
	InitializePush(ctx context.Context, userID string, req models.InitializePushRequest) error

	// PushItems stores one batch and reports whether it was accepted.
	PushItems(ctx context.Context, userID, deviceID string, batch models.SyncTransferItem) (bool, error)

	// QueueUploads records attachment files the device is about to upload.
	QueueUploads(ctx context.Context, userID, tag string, uploads []models.AttachmentUpload) error
}

// SyncServiceWrapper defines middleware composition for SyncService.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
