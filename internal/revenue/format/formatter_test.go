package format

import (
	"testing"

	revenuedomain "github.com/stayops/revenued/internal/revenue/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestToResponseRequantizesHalfUp(t *testing.T) {
	cases := []struct {
		total string
		want  float64
	}{
		{"1234.505", 1234.51},
		{"10.005", 10.01},
		{"10.004", 10.0},
		{"0.00", 0},
		{"4975.50", 4975.5},
	}

	for _, tc := range cases {
		got := ToResponse(revenuedomain.Summary{Total: tc.total})
		assert.Equal(t, tc.want, got.TotalRevenue, "total %s", tc.total)
	}
}

func TestToResponsePassesFieldsThrough(t *testing.T) {
	got := ToResponse(revenuedomain.Summary{
		PropertyID:     "prop-003",
		TenantID:       "tenant-1",
		Total:          "6100.50",
		Currency:       "USD",
		Count:          2,
		Month:          intPtr(11),
		Year:           intPtr(2024),
		Timezone:       "Europe/Berlin",
		Source:         revenuedomain.SourceFallback,
		FallbackReason: "connection refused",
	})

	assert.Equal(t, "prop-003", got.PropertyID)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, int64(2), got.ReservationsCount)
	require.NotNil(t, got.Month)
	assert.Equal(t, 11, *got.Month)
	require.NotNil(t, got.Year)
	assert.Equal(t, 2024, *got.Year)
	assert.Equal(t, "Europe/Berlin", got.Timezone)
}

func TestToResponseAllTimeShapeHasNoPeriod(t *testing.T) {
	got := ToResponse(revenuedomain.Summary{
		PropertyID: "prop-001",
		Total:      "1000.00",
		Currency:   "USD",
		Count:      3,
	})

	assert.Nil(t, got.Month)
	assert.Nil(t, got.Year)
	assert.Empty(t, got.Timezone)
}

func TestToResponseMalformedTotalRendersZero(t *testing.T) {
	got := ToResponse(revenuedomain.Summary{Total: "not-a-number"})
	assert.Equal(t, float64(0), got.TotalRevenue)
}
