package domain

import (
	"context"
	"time"
)

// Repository exposes the scoped read queries the revenue pipeline needs.
// Every query is tenant-scoped; implementations must never leak rows
// across tenants.
type Repository interface {
	// PropertyTimezone returns the configured IANA zone name for the
	// property, or "" when the property is unknown or has no zone set.
	PropertyTimezone(ctx context.Context, propertyID, tenantID string) (string, error)

	// LatestCheckIn returns the most recent check-in instant for the
	// property, or nil when the property has no reservations.
	LatestCheckIn(ctx context.Context, propertyID, tenantID string) (*time.Time, error)

	// TotalsBetween sums reservation amounts with check-in in the
	// half-open UTC interval [start, end).
	TotalsBetween(ctx context.Context, propertyID, tenantID string, start, end time.Time) (Totals, error)

	// TotalsAllTime sums reservation amounts with no time bound.
	TotalsAllTime(ctx context.Context, propertyID, tenantID string) (Totals, error)
}
