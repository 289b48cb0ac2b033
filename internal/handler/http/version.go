package http

import (
	"net/http"

	"github.com/MKhiriev/go-vocab-sync/internal/utils"
)

func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "Vocab Sync Server is running!"}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"version": h.version}, http.StatusOK)
}
