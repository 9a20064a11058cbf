package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"echofm/catalog"
	"echofm/config"
	"echofm/core/auth"
	"echofm/logger"
	"echofm/store"
)

// APIHandler 处理所有API请求
type APIHandler struct {
	kv  store.KV
	cfg *config.Config
}

// NewAPIHandler 创建新的API处理器
func NewAPIHandler(kv store.KV, cfg *config.Config) *APIHandler {
	return &APIHandler{kv: kv, cfg: cfg}
}

// apiResponse is the uniform JSON envelope every endpoint returns.
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode response", logger.ErrorField(err))
	}
}

func ok(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: data})
}

func bad(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: msg})
}

func notFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Error: msg})
}

// fail translates store errors into HTTP statuses. NotFound, Conflict and
// Validation are domain failures; everything else is a storage fault and
// surfaces as a 500.
func fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(w, err.Error())
	case errors.Is(err, store.ErrConflict):
		writeJSON(w, http.StatusConflict, apiResponse{Success: false, Error: err.Error()})
	case errors.Is(err, store.ErrValidation):
		bad(w, err.Error())
	default:
		logger.Error("storage failure", logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: "internal error"})
	}
}

// userID resolves the caller's identity from an optional bearer token.
// Anonymous callers share the default user, mirroring a single-profile
// install; an invalid token is treated the same rather than rejected,
// since likes carry no sensitive data.
func (h *APIHandler) userID(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return catalog.DefaultUserID
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return catalog.DefaultUserID
	}

	claims, err := auth.ParseToken([]byte(h.cfg.JWTSecret), parts[1])
	if err != nil {
		logger.Debug("ignoring invalid bearer token", logger.ErrorField(err))
		return catalog.DefaultUserID
	}
	return claims.UserID
}
