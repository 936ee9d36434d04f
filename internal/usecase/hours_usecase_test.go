package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursUseCase_StatusUsesStoreTimezone(t *testing.T) {
	// UTC-4: 02:00 субботы по UTC равно 22:00 пятницы в магазине.
	store := time.FixedZone("store", -4*60*60)
	now := time.Date(2026, 10, 17, 2, 0, 0, 0, time.UTC)

	api := newFakeAPI()
	api.schedule = []domain.ScheduleEntry{
		{ID: "fri", Day: domain.Friday, OpeningTime: "20:00", ClosingTime: "23:00", Active: true},
		{ID: "sat", Day: domain.Saturday, Closed: true, Active: true},
	}

	hours := usecase.NewHoursUC(api, fixedClock(now), store, testLogger())

	status, err := hours.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OpenNow, status.State)
	require.NotNil(t, status.Today)
	assert.Equal(t, "fri", status.Today.ID)

	utc := usecase.NewHoursUC(api, fixedClock(now), time.UTC, testLogger())
	status, err = utc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ClosedAllDay, status.State)
}

func TestHoursUseCase_StatusPropagatesAPIError(t *testing.T) {
	api := newFakeAPI()
	api.err = e.ErrUpstreamServer

	_, err := usecase.NewHoursUC(api, fixedClock(friday), time.UTC, testLogger()).Status(context.Background())
	assert.ErrorIs(t, err, e.ErrUpstreamServer)
}
