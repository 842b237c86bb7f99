package http

import (
	"net/http"

	"github.com/seuristic/image-ecommerce/internal/media"
)

type MediaHandler struct {
	signer *media.Signer
}

func NewMediaHandler(signer *media.Signer) *MediaHandler {
	return &MediaHandler{signer: signer}
}

// GET /api/media/auth
func (h *MediaHandler) UploadAuth(w http.ResponseWriter, r *http.Request) {
	if IdentityFromContext(r.Context()) == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respondJSON(w, http.StatusOK, h.signer.AuthParams())
}
