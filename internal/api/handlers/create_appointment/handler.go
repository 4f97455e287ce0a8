package create_appointment

import (
	"errors"
	"net/http"

	"github.com/danielnamimi665/barber-shop-web/internal/api/handlers"
	"github.com/danielnamimi665/barber-shop-web/internal/api/middleware"
	createAppointment "github.com/danielnamimi665/barber-shop-web/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и H:MM"
	msgSlotOccupied       = "выбранный слот уже занят"
	msgPastDate           = "дата записи уже прошла"
	msgPastSlot           = "время слота уже наступило"
	msgDateOutOfRange     = "дата вне окна бронирования"
	msgInvalidTimeSlot    = "время не входит в сетку слотов"
	msgInvalidInput       = "не заполнены обязательные поля записи"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotOccupied):
			h.logger.Warn("POST /appointments - Slot occupied: user=%s, date=%s, time=%s",
				userID, req.SelectedDate, req.SelectedTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /appointments - Past date: user=%s, date=%s", userID, req.SelectedDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrPastSlot):
			h.logger.Warn("POST /appointments - Past slot: user=%s, date=%s, time=%s",
				userID, req.SelectedDate, req.SelectedTime)
			handlers.RespondBadRequest(w, msgPastSlot)

		case errors.Is(err, createAppointment.ErrDateOutOfRange):
			h.logger.Warn("POST /appointments - Date out of booking window: user=%s, date=%s",
				userID, req.SelectedDate)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Time not on slot grid: user=%s, time=%s",
				userID, req.SelectedTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, user=%s, date=%s, time=%s",
		result.ID, userID, req.SelectedDate, req.SelectedTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
