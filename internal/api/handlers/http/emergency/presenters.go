package emergency

import (
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Aftab0008/car-end/pkg/e"
)

const (
	msgAccepted = "Notification sent"
	msgInvalid  = "Invalid or missing required fields"
	msgInternal = "Internal server error"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, e.ErrInvalidRequest):
		h.log(r).Warn("intake rejected", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, msgInvalid)
	default:
		// store or delivery failure; detail stays in the logs
		h.log(r).Error("intake failed", slog.Any("error", err))
		writeText(w, http.StatusInternalServerError, msgInternal)
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func writeText(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
