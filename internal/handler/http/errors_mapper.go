package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vocab-sync/internal/service"
	"github.com/MKhiriev/go-vocab-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidToken:   http.StatusUnauthorized,
	service.ErrTokenIsExpired: http.StatusUnauthorized,

	store.ErrUserNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
