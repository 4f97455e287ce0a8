package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// publishTimeout ограничивает время публикации, чтобы недоступный Redis
// не задерживал завершение операции над хранилищем
const publishTimeout = 2 * time.Second

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс счётчика опубликованных событий
type Metrics interface {
	IncEventPublished(action string)
}

// RedisNotifier фан-аут событий через Redis pub/sub
type RedisNotifier struct {
	client  *redis.Client
	channel string
	logger  Logger
	metrics Metrics
}

// NewRedisNotifier создает notifier поверх существующего Redis-клиента.
// metrics может быть nil, если метрики выключены.
func NewRedisNotifier(client *redis.Client, channel string, logger Logger, metrics Metrics) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		logger:  logger,
		metrics: metrics,
	}
}

// Publish публикует событие в канал. Ошибки только логируются:
// доставка best-effort, поллинг догонит пропуски.
func (n *RedisNotifier) Publish(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("notify: failed to marshal event action=%s: %v", event.Action, err)
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := n.client.Publish(pubCtx, n.channel, payload).Err(); err != nil {
		n.logger.Warn("notify: failed to publish event action=%s appointment=%s: %v",
			event.Action, event.Appointment.AppointmentID, err)
		return
	}

	if n.metrics != nil {
		n.metrics.IncEventPublished(string(event.Action))
	}
}

// Subscribe подписывается на канал событий.
// Возвращённый канал закрывается при отмене контекста.
func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan Event, error) {
	sub := n.client.Subscribe(ctx, n.channel)

	// Дожидаемся подтверждения подписки, чтобы не потерять первые события
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	events := make(chan Event)

	go func() {
		defer close(events)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					n.logger.Warn("notify: failed to decode event payload: %v", err)
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}
