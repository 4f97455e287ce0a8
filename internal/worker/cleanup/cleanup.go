// Package cleanup фоновый джоб удаления просроченных записей: прошлые даты
// целиком и прошедшие слоты сегодняшнего дня. Чистка идемпотентна, поэтому
// джоб спокойно сосуществует с opportunistic cleanup на чтениях.
package cleanup

import (
	"context"
	"fmt"
	"time"
)

// Job периодическая чистка хранилища записей
type Job struct {
	appointmentRepo AppointmentRepository
	clock           Clock
	metrics         Metrics
	logger          Logger
	interval        time.Duration
}

// NewJob создает новый джоб чистки. metrics может быть nil, если метрики выключены.
func NewJob(
	appointmentRepo AppointmentRepository,
	clock Clock,
	metrics Metrics,
	logger Logger,
	interval time.Duration,
) *Job {
	return &Job{
		appointmentRepo: appointmentRepo,
		clock:           clock,
		metrics:         metrics,
		logger:          logger,
		interval:        interval,
	}
}

// Run запускает цикл чистки и блокируется до отмены контекста.
// Первый проход выполняется сразу при старте.
func (j *Job) Run(ctx context.Context) {
	j.logger.Info("cleanup: worker started, interval=%s", j.interval)

	if err := j.RunOnce(ctx); err != nil {
		j.logger.Error("cleanup: initial pass failed: %v", err)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("cleanup: worker stopped")
			return

		case <-ticker.C:
			if err := j.RunOnce(ctx); err != nil {
				j.logger.Error("cleanup: pass failed: %v", err)
			}
		}
	}
}

// RunOnce выполняет один проход чистки
func (j *Job) RunOnce(ctx context.Context) error {
	start := time.Now()

	deleted, err := j.appointmentRepo.DeleteExpired(ctx, j.clock.Today(), j.clock.Now())
	if err != nil {
		return fmt.Errorf("cleanup: delete expired appointments: %w", err)
	}

	if j.metrics != nil {
		j.metrics.AddCleaned(deleted)
	}

	if deleted > 0 {
		j.logger.Info("cleanup: removed %d expired appointments in %s", deleted, time.Since(start))
	}

	return nil
}
