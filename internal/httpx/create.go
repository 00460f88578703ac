package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// createRequest is the JSON body accepted by POST /api/secrets. The payload is
// already encrypted client side; the server never sees key material.
type createRequest struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	TTLSecs    uint32 `json:"ttl_secs"`
}

// handleCreateSecret implements POST /api/secrets.
func (h *Handler) handleCreateSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodPost {
		h.writeError(ctx, w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.URL.Path != "/api/secrets" { // disallow trailing slash variants
		h.writeError(ctx, w, http.StatusNotFound, "not found")
		return
	}
	body := r.Body
	if h.MaxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, h.MaxBody)
	}
	defer body.Close()
	var req createRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}
	sec, err := h.Service.CreateSecret(ctx, req.Ciphertext, req.IV, req.TTLSecs)
	if err != nil {
		h.mapServiceError(ctx, w, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.SecretsCreated.Inc()
	}
	cid, _ := GetCorrelationID(ctx)
	slog.Info("secret created", "cid", cid, "ttl_secs", sec.TTLSecs)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(struct {
		ID string `json:"id"`
	}{ID: string(sec.ID)})
}
