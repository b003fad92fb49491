package window

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stayops/revenued/internal/clock"
	reservationdomain "github.com/stayops/revenued/internal/reservation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type storeStub struct {
	timezone  string
	tzErr     error
	latest    *time.Time
	latestErr error
}

func (s *storeStub) PropertyTimezone(ctx context.Context, propertyID, tenantID string) (string, error) {
	return s.timezone, s.tzErr
}

func (s *storeStub) LatestCheckIn(ctx context.Context, propertyID, tenantID string) (*time.Time, error) {
	return s.latest, s.latestErr
}

func (s *storeStub) TotalsBetween(ctx context.Context, propertyID, tenantID string, start, end time.Time) (reservationdomain.Totals, error) {
	return reservationdomain.Totals{}, nil
}

func (s *storeStub) TotalsAllTime(ctx context.Context, propertyID, tenantID string) (reservationdomain.Totals, error) {
	return reservationdomain.Totals{}, nil
}

func newTestResolver(store *storeStub, now time.Time) *Resolver {
	return NewResolver(Params{
		Store: store,
		Clock: clock.NewFakeClock(now),
		Log:   zap.NewNop(),
	})
}

func intPtr(v int) *int { return &v }

func TestResolveExplicitMonthAcrossDSTChange(t *testing.T) {
	r := newTestResolver(&storeStub{timezone: "America/New_York"}, time.Now())

	win, err := r.Resolve(context.Background(), "prop-001", "tenant-1", intPtr(3), intPtr(2024))
	require.NoError(t, err)

	// New York enters DST on March 10, 2024: the window starts at
	// UTC-5 and ends at UTC-4.
	assert.Equal(t, 3, win.Month)
	assert.Equal(t, 2024, win.Year)
	assert.Equal(t, "America/New_York", win.Timezone)
	assert.True(t, win.StartUTC.Equal(time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)),
		"start = %v", win.StartUTC)
	assert.True(t, win.EndUTC.Equal(time.Date(2024, 4, 1, 4, 0, 0, 0, time.UTC)),
		"end = %v", win.EndUTC)
}

func TestResolveDecemberRollsIntoNextYear(t *testing.T) {
	r := newTestResolver(&storeStub{}, time.Now())

	win, err := r.Resolve(context.Background(), "prop-001", "tenant-1", intPtr(12), intPtr(2023))
	require.NoError(t, err)

	assert.Equal(t, "UTC", win.Timezone)
	assert.True(t, win.StartUTC.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, win.EndUTC.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResolveFromLatestCheckIn(t *testing.T) {
	// 13:00 UTC on June 30 is already July 1 in Auckland (UTC+12).
	latest := time.Date(2024, 6, 30, 13, 0, 0, 0, time.UTC)
	r := newTestResolver(&storeStub{timezone: "Pacific/Auckland", latest: &latest}, time.Now())

	win, err := r.Resolve(context.Background(), "prop-001", "tenant-1", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 7, win.Month)
	assert.Equal(t, 2024, win.Year)
}

func TestResolveDefaultsToCurrentLocalMonth(t *testing.T) {
	// 00:30 UTC on Jan 15 is still Jan 14 evening in New York, same month.
	now := time.Date(2025, 1, 15, 0, 30, 0, 0, time.UTC)
	r := newTestResolver(&storeStub{timezone: "America/New_York"}, now)

	win, err := r.Resolve(context.Background(), "prop-001", "tenant-1", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, win.Month)
	assert.Equal(t, 2025, win.Year)
	assert.Equal(t, "America/New_York", win.Timezone)
}

func TestResolveUnknownTimezoneFallsBackToUTC(t *testing.T) {
	r := newTestResolver(&storeStub{timezone: "Mars/Olympus"}, time.Now())

	win, err := r.Resolve(context.Background(), "prop-001", "tenant-1", intPtr(6), intPtr(2024))
	require.NoError(t, err)

	assert.Equal(t, "UTC", win.Timezone)
	assert.True(t, win.StartUTC.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, win.EndUTC.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResolveHalfOpenWindowIsOneLocalMonth(t *testing.T) {
	r := newTestResolver(&storeStub{timezone: "Europe/Berlin"}, time.Now())

	for month := 1; month <= 12; month++ {
		win, err := r.Resolve(context.Background(), "prop-001", "tenant-1", intPtr(month), intPtr(2024))
		require.NoError(t, err)

		loc, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		assert.True(t, win.StartUTC.Before(win.EndUTC))
		assert.Equal(t, 1, win.StartUTC.In(loc).Day())
		assert.Equal(t, 1, win.EndUTC.In(loc).Day())
		assert.Equal(t, time.Month(month), win.StartUTC.In(loc).Month())
	}
}

func TestResolveStoreErrorPropagates(t *testing.T) {
	r := newTestResolver(&storeStub{tzErr: errors.New("connection refused")}, time.Now())

	_, err := r.Resolve(context.Background(), "prop-001", "tenant-1", nil, nil)
	require.Error(t, err)

	r = newTestResolver(&storeStub{latestErr: errors.New("connection refused")}, time.Now())
	_, err = r.Resolve(context.Background(), "prop-001", "tenant-1", nil, nil)
	require.Error(t, err)
}
