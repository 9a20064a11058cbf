package server

import (
	"encoding/json"
	"net/http"
	"time"

	"echofm/core/auth"
	"echofm/logger"
)

// TokenHandler mints a bearer token for a user id so a client can keep a
// stable likes profile across devices. There are no accounts; the id is
// whatever the client asks for.
func (h *APIHandler) TokenHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		bad(w, "userId is required")
		return
	}

	ttl := time.Duration(h.cfg.TokenTTLHours) * time.Hour
	token, err := auth.GenerateToken([]byte(h.cfg.JWTSecret), req.UserID, ttl)
	if err != nil {
		logger.Error("failed to mint token", logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: "internal error"})
		return
	}

	ok(w, map[string]string{"token": token, "userId": req.UserID})
}
