package service

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

// Services groups the services of the reference server.
type Services struct {
	AuthService    AuthService
	DeviceService  DeviceService
	SyncService    SyncService
	AppInfoService AppInfoService
}

func NewServices(storages *store.ServerStorages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	syncService := NewSyncValidationService(logger).Wrap(
		NewSyncService(storages.Vaults, cfg.Server.FetchBatchSize, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.Users, cfg.App, logger),
		DeviceService:  NewDeviceService(storages.Vaults, logger),
		SyncService:    syncService,
		AppInfoService: appInfo,
	}, nil
}
