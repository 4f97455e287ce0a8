package save_all

import (
	"errors"
	"net/http"

	"github.com/danielnamimi665/barber-shop-web/internal/api/handlers"
	"github.com/danielnamimi665/barber-shop-web/internal/service/appointments"
	"github.com/danielnamimi665/barber-shop-web/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyBatch         = "пакет изменений пуст"
	msgInvalidStatus      = "некорректный статус записи"
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

// Handle POST /api/v1/appointments/save-all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAllRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/save-all - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len(req.Changes) == 0 {
		h.logger.Warn("POST /appointments/save-all - Empty batch")
		handlers.RespondBadRequest(w, msgEmptyBatch)
		return
	}

	result, err := h.service.SaveAll(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("POST /appointments/save-all - Invalid status in batch: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("POST /appointments/save-all - Failed to commit batch: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/save-all - Batch committed: updated=%d, removed=%d, purged=%d",
		result.Updated, result.Removed, result.Purged)
	handlers.RespondJSON(w, http.StatusOK, result)
}
