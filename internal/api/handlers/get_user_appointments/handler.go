package get_user_appointments

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/danielnamimi665/barber-shop-web/internal/api/handlers"
	"github.com/danielnamimi665/barber-shop-web/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		h.logger.Warn("GET /users/{id}/appointments - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/appointments - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Чужой список может смотреть только администратор
	if !ident.IsAdmin && ident.UserID != userID {
		h.logger.Warn("GET /users/{id}/appointments - Access denied: user=%s, requested=%s",
			ident.UserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/appointments - Failed to list appointments: user=%s, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/appointments - Appointments retrieved: user=%s, count=%d",
		userID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
