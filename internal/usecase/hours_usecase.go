package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// HoursUseCase вычисляет состояние магазина по расписанию из API.
type HoursUseCase struct {
	scheduleAPI ScheduleAPI
	clock       Clock
	location    *time.Location
	logger      logger.Logger
}

func NewHoursUC(scheduleAPI ScheduleAPI, clock Clock, location *time.Location, logger logger.Logger) *HoursUseCase {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.Local
	}

	return &HoursUseCase{
		scheduleAPI: scheduleAPI,
		clock:       clock,
		location:    location,
		logger:      logger,
	}
}

// Now: текущее время в часовом поясе магазина.
func (h *HoursUseCase) Now() time.Time {
	return h.clock().In(h.location)
}

func (h *HoursUseCase) Status(ctx context.Context) (*domain.HoursStatus, error) {
	const op = "HoursUseCase.Status"

	schedule, err := h.scheduleAPI.ListSchedule(ctx, "")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	status := h.Evaluate(schedule)

	return &status, nil
}

// Evaluate применяет расписание к текущему моменту.
func (h *HoursUseCase) Evaluate(schedule []domain.ScheduleEntry) domain.HoursStatus {
	return domain.EvaluateHours(schedule, h.Now())
}
