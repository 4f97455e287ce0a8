package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/danielnamimi665/barber-shop-web/internal/api/handlers"
)

const (
	msgStreamingUnsupported = "потоковая передача не поддерживается"
	msgSubscribeFailed      = "не удалось подписаться на события"

	// keepAliveInterval период отправки SSE-комментариев, чтобы прокси
	// не закрывали простаивающее соединение
	keepAliveInterval = 30 * time.Second
)

type Handler struct {
	subscriber Subscriber
	logger     Logger
}

func NewHandler(subscriber Subscriber, logger Logger) *Handler {
	return &Handler{
		subscriber: subscriber,
		logger:     logger,
	}
}

// Handle GET /api/v1/appointments/events
//
// Отдаёт события изменения хранилища как Server-Sent Events. Событие —
// сигнал перечитать данные; клиент при обрыве соединения переподключается
// сам и первым делом делает полный refetch.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /appointments/events - Streaming unsupported by response writer")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	// Поток живёт дольше server-wide write timeout, снимаем дедлайн
	// для этого соединения
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Warn("GET /appointments/events - Failed to clear write deadline: %v", err)
	}

	eventCh, err := h.subscriber.Subscribe(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments/events - Failed to subscribe: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgSubscribeFailed)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("GET /appointments/events - Client connected")

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /appointments/events - Client disconnected")
			return

		case event, open := <-eventCh:
			if !open {
				h.logger.Info("GET /appointments/events - Event stream closed")
				return
			}

			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("GET /appointments/events - Failed to marshal event: %v", err)
				continue
			}

			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Action, payload)
			flusher.Flush()

		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
