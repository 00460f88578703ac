package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dejisec/cendre/internal/app"
)

// consumeResponse is the JSON body returned by GET /api/secret/{id}. Server
// timestamps stay internal; the client only needs the material to decrypt.
type consumeResponse struct {
	ID         string `json:"id"`
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	TTLSecs    uint32 `json:"ttl_secs"`
}

// handleConsumeSecret implements GET /api/secret/{id}. A successful response
// is the only delivery of the ciphertext; the record is gone afterwards.
func (h *Handler) handleConsumeSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		h.writeError(ctx, w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	const prefix = "/api/secret/"
	if len(r.URL.Path) <= len(prefix) || r.URL.Path[:len(prefix)] != prefix {
		h.writeError(ctx, w, http.StatusNotFound, "secret not found")
		return
	}
	id := r.URL.Path[len(prefix):]
	sec, err := h.Service.ConsumeSecret(ctx, id)
	if err != nil {
		if h.Metrics != nil && errors.Is(err, app.ErrNotFound) {
			h.Metrics.SecretsMissed.Inc()
		}
		h.mapServiceError(ctx, w, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.SecretsConsumed.Inc()
	}
	cid, _ := GetCorrelationID(ctx)
	slog.Info("secret consumed", "cid", cid)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(consumeResponse{
		ID:         string(sec.ID),
		Ciphertext: sec.Ciphertext,
		IV:         sec.IV,
		TTLSecs:    sec.TTLSecs,
	})
}
