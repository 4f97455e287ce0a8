package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/danielnamimi665/barber-shop-web/internal/api/handlers"
	"github.com/danielnamimi665/barber-shop-web/internal/api/middleware"
	"github.com/danielnamimi665/barber-shop-web/internal/service/appointments"
)

const (
	msgMissingAppointmentID = "отсутствует ID записи"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgMissingUserID        = "отсутствует ID пользователя"
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("GET /appointments/{id} - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/{id} - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Чужую запись может смотреть только администратор
	if !ident.IsAdmin && result.UserID != "" && result.UserID != ident.UserID {
		h.logger.Warn("GET /appointments/{id} - Access denied: id=%s, user=%s", appointmentID, ident.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment retrieved: id=%s, user=%s", appointmentID, ident.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
