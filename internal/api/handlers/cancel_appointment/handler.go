package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/danielnamimi665/barber-shop-web/internal/api/handlers"
	"github.com/danielnamimi665/barber-shop-web/internal/api/middleware"
	"github.com/danielnamimi665/barber-shop-web/internal/service/appointments"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingAppointmentID = "отсутствует ID записи"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
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

// Handle POST /api/v1/appointments/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/cancel - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.AppointmentID == "" {
		h.logger.Warn("POST /appointments/cancel - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	err := h.service.Cancel(r.Context(), req.ToServiceRequest(ident.UserID, ident.IsAdmin))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/cancel - Appointment not found: id=%s", req.AppointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("POST /appointments/cancel - Access denied: id=%s, user=%s",
				req.AppointmentID, ident.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /appointments/cancel - Failed to cancel appointment: id=%s, error=%v",
				req.AppointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/cancel - Appointment cancelled: id=%s, user=%s",
		req.AppointmentID, ident.UserID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}
