package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.registerDevice").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var device models.DeviceIdentity
	if err := json.NewDecoder(r.Body).Decode(&device); err != nil {
		log.Err(err).Str("func", "*Handler.registerDevice").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.DeviceService.RegisterDevice(ctx, userID, device); err != nil {
		log.Err(err).Str("func", "*Handler.registerDevice").Msg("error registering device")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) unregisterDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.unregisterDevice").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	deviceID := chi.URLParam(r, "deviceID")
	if err := h.services.DeviceService.UnregisterDevice(ctx, userID, deviceID); err != nil {
		log.Err(err).Str("func", "*Handler.unregisterDevice").Str("device_id", deviceID).Msg("error unregistering device")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) queueUploads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.queueUploads").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.UploadQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.queueUploads").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.SyncService.QueueUploads(ctx, userID, req.Tag, req.Files); err != nil {
		log.Err(err).Str("func", "*Handler.queueUploads").Msg("error queueing uploads")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
