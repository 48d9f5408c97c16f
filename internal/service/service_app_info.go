package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService reporting cfg.Version. The
// version must be set.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   models.AppInfo{Version: cfg.Version, Protocol: models.ProtocolVersion},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
