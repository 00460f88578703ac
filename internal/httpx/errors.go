package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dejisec/cendre/internal/app"
	"github.com/dejisec/cendre/internal/domain"
	"github.com/dejisec/cendre/internal/store"
)

// writeError writes a JSON error body with given status code.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg})
	if cid, ok := GetCorrelationID(ctx); ok {
		slog.Debug("wrote error response", "cid", cid, "status", code, "msg", msg)
	}
}

// mapServiceError maps domain/store/service errors to HTTP responses.
func (h *Handler) mapServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	cid, _ := GetCorrelationID(ctx)
	var backendErr *store.BackendError
	switch {
	case errors.Is(err, domain.ErrEmptyPayload):
		slog.Warn("service error", "cid", cid, "code", "empty_payload")
		h.writeError(ctx, w, http.StatusBadRequest, "ciphertext and iv must be non-empty")
	case errors.Is(err, domain.ErrTTLInvalid):
		slog.Warn("service error", "cid", cid, "code", "ttl_invalid")
		h.writeError(ctx, w, http.StatusBadRequest, "ttl_secs out of range")
	case errors.Is(err, app.ErrNotFound):
		slog.Info("service error", "cid", cid, "code", "not_found")
		h.writeError(ctx, w, http.StatusNotFound, "secret not found")
	case errors.As(err, &backendErr):
		// Do not echo backend details to the client.
		slog.Error("storage backend error", "cid", cid, "op", backendErr.Op)
		h.writeError(ctx, w, http.StatusInternalServerError, "internal storage error")
	default:
		slog.Error("unhandled service error", "cid", cid, "code", "unhandled")
		h.writeError(ctx, w, http.StatusInternalServerError, "internal")
	}
}
