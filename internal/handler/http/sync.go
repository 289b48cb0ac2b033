package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/utils"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// syncUserData handles POST /api/user/sync: one reconciliation batch per
// request.
//
// The batch is best-effort: invalid elements are skipped inside the service
// and the response stats tell the client how many elements of each kind were
// accepted. A store failure mid-batch produces the generic failure envelope;
// elements merged before the failure stay committed, so the client may
// simply retry the whole batch.
func (h *Handler) syncUserData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUser, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "Handler.syncUserData").Msg("no verified owner in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var batch models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	log.Debug().
		Str("user_uid", authUser.UID).
		Int("batch_size", batch.Size()).
		Msg("received push batch")

	stats, err := h.services.SyncService.Push(ctx, authUser.UID, batch)
	if err != nil {
		log.Err(err).Str("user_uid", authUser.UID).Msg("push batch failed")
		writeError(w, "Sync failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PushResponse{
		Success: true,
		Message: "Data synced successfully",
		Stats:   stats,
	}, http.StatusOK)
}
