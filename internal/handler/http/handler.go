package http

import (
	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	hub      *hub
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      newHub(services, logger),
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Close closes every open hub connection with a close frame.
func (h *Handler) Close() {
	h.hub.close(app.MsgServerShuttingDown)
}
