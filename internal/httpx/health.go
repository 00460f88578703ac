package httpx

import "net/http"

// handleHealth reports liveness and backend reachability. A failing store
// ping turns the probe into a 503 so orchestrators stop routing traffic.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Ping(r.Context()); err != nil {
		h.writeError(r.Context(), w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
