package restapi

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
)

func (c *Client) ListSchedule(ctx context.Context, token string) ([]domain.ScheduleEntry, error) {
	const op = "Client.ListSchedule"

	return c.scheduleList(ctx, op, request{method: http.MethodGet, path: "/horarios", token: token})
}

func (c *Client) CreateScheduleEntry(ctx context.Context, token string, in *usecase.ScheduleInput) (*domain.ScheduleEntry, error) {
	const op = "Client.CreateScheduleEntry"

	body := scheduleBody{
		Dia:          string(in.Day),
		HoraApertura: in.OpeningTime,
		HoraCierre:   in.ClosingTime,
		Cerrado:      in.Closed,
	}

	return c.scheduleCall(ctx, op, request{method: http.MethodPost, path: "/horarios", token: token, body: body})
}

func (c *Client) UpdateScheduleEntry(ctx context.Context, token, id string, in *usecase.ScheduleInput) (*domain.ScheduleEntry, error) {
	const op = "Client.UpdateScheduleEntry"

	body := scheduleBody{
		HoraApertura: in.OpeningTime,
		HoraCierre:   in.ClosingTime,
		Cerrado:      in.Closed,
	}

	return c.scheduleCall(ctx, op, request{method: http.MethodPatch, path: pathID("/horarios", id), token: token, body: body})
}

// InitializeSchedule создает расписание на неделю и возвращает актуальный список.
func (c *Client) InitializeSchedule(ctx context.Context, token string) ([]domain.ScheduleEntry, error) {
	const op = "Client.InitializeSchedule"

	if err := c.do(ctx, request{method: http.MethodPost, path: "/horarios/initialize", token: token, body: struct{}{}}, nil); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.ListSchedule(ctx, token)
}

func (c *Client) scheduleList(ctx context.Context, op string, req request) ([]domain.ScheduleEntry, error) {
	var models []scheduleModel
	if err := c.do(ctx, req, &models); err != nil {
		return nil, e.Wrap(op, err)
	}

	return toArr(models, toSchedule), nil
}

func (c *Client) scheduleCall(ctx context.Context, op string, req request) (*domain.ScheduleEntry, error) {
	var model scheduleModel
	if err := c.do(ctx, req, &model); err != nil {
		return nil, e.Wrap(op, err)
	}

	entry := toSchedule(&model)

	return &entry, nil
}
