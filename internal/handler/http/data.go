package http

import (
	"net/http"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/utils"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// getUserData handles GET /api/user/data: a full snapshot pull in client
// shape. The response arrays are never null, so a fresh install can restore
// directly from the body.
func (h *Handler) getUserData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUser, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "Handler.getUserData").Msg("no verified owner in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	snapshot, err := h.services.SnapshotService.Export(ctx, authUser.UID)
	if err != nil {
		log.Err(err).Str("user_uid", authUser.UID).Msg("snapshot export failed")
		writeError(w, "Failed to fetch data", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PullResponse{
		Success: true,
		Data:    snapshot,
		Stats:   snapshot.Stats(),
	}, http.StatusOK)
}
