package service

import (
	"context"
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// clockNow resolves the injectable request clock, defaulting to time.Now.
func clockNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}

// windowStart returns the ISO date of the inclusive lower bound of a
// horizon window ending today.
func windowStart(now time.Time, horizon int) string {
	return now.AddDate(0, 0, -horizon).Format(domain.DateLayout)
}

// observe emits a use-case event with the elapsed duration.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: startedAt,
	})
}
