package purge_cancelled

import (
	"net/http"

	"github.com/danielnamimi665/barber-shop-web/internal/api/handlers"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// PurgeResponse HTTP response model
type PurgeResponse struct {
	Purged int64 `json:"purged"`
}

// Handle DELETE /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	purged, err := h.service.Purge(r.Context())
	if err != nil {
		h.logger.Error("DELETE /appointments - Failed to purge cancelled appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /appointments - Purged %d cancelled appointments", purged)
	handlers.RespondJSON(w, http.StatusOK, PurgeResponse{Purged: purged})
}
