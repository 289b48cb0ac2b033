package http

import (
	"net/http"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/utils"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// upsertUser handles POST /api/user/upsert: creates or refreshes the owner's
// profile from the verified token claims. The request body is ignored;
// identity only ever comes from the token.
func (h *Handler) upsertUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUser, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "Handler.upsertUser").Msg("no verified owner in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.UpsertProfile(ctx, authUser)
	if err != nil {
		log.Err(err).Str("user_uid", authUser.UID).Msg("profile upsert failed")
		writeError(w, "Failed to upsert user", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}
