package system

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// StoreProber reports whether the relational store is reachable.
type StoreProber interface {
	Health(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	store  StoreProber
}

func NewHandler(logger *slog.Logger, store StoreProber) *Handler {
	return &Handler{logger: logger, store: store}
}

func (h *Handler) SystemRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("emergency intake service"))
}

// SystemHealth probes the store connection in addition to process liveness.
func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := h.store.Health(ctx); err != nil {
		h.logger.Error("health probe failed", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "fail"})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
