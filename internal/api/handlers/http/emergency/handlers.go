package emergency

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Aftab0008/car-end/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type EmergencyIntake interface {
	Submit(ctx context.Context, req domain.CreateEmergencyRequest) error
}

type Handler struct {
	logger *slog.Logger
	intake EmergencyIntake
}

func NewHandler(logger *slog.Logger, intake EmergencyIntake) *Handler {
	return &Handler{
		logger: logger,
		intake: intake,
	}
}

// SubmitEmergency handles POST /api/emergency. Responses are plain text:
// the caller gets a generic message and status code, never provider detail.
func (h *Handler) SubmitEmergency(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEmergencyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r).Warn("malformed intake payload", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, msgInvalid)
		return
	}

	if err := h.intake.Submit(r.Context(), req); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, msgAccepted)
}
