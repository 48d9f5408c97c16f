package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrDeviceUnknown:           http.StatusNotFound,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrDeviceNotFound:    http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
