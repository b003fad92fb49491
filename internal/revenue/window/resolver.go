package window

import (
	"context"
	"time"

	"github.com/stayops/revenued/internal/clock"
	reservationdomain "github.com/stayops/revenued/internal/reservation/domain"
	revenuedomain "github.com/stayops/revenued/internal/revenue/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Store reservationdomain.Repository
	Clock clock.Clock
	Log   *zap.Logger
}

// Resolver turns an optional (month, year) into a concrete reporting
// window in a property's local timezone.
type Resolver struct {
	store reservationdomain.Repository
	clock clock.Clock
	log   *zap.Logger
}

func NewResolver(p Params) *Resolver {
	return &Resolver{
		store: p.Store,
		clock: p.Clock,
		log:   p.Log.Named("revenue.window"),
	}
}

// Resolve determines the month to report and its half-open UTC interval.
// An unknown or invalid timezone silently falls back to UTC; only store
// failures return an error, so the caller can degrade.
func (r *Resolver) Resolve(ctx context.Context, propertyID, tenantID string, month, year *int) (revenuedomain.Window, error) {
	tzName, err := r.store.PropertyTimezone(ctx, propertyID, tenantID)
	if err != nil {
		return revenuedomain.Window{}, err
	}
	if tzName == "" {
		tzName = "UTC"
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		r.log.Warn("unknown property timezone, falling back to UTC",
			zap.String("property_id", propertyID),
			zap.String("timezone", tzName),
		)
		tzName = "UTC"
		loc = time.UTC
	}

	var m, y int
	switch {
	case month != nil && year != nil:
		m, y = *month, *year
	default:
		latest, err := r.store.LatestCheckIn(ctx, propertyID, tenantID)
		if err != nil {
			return revenuedomain.Window{}, err
		}
		if latest != nil {
			local := latest.In(loc)
			m, y = int(local.Month()), local.Year()
		} else {
			now := r.clock.Now().In(loc)
			m, y = int(now.Month()), now.Year()
		}
	}

	// time.Date normalizes month 13, so December rolls into January of
	// the next year without special casing.
	start := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, loc)
	end := time.Date(y, time.Month(m)+1, 1, 0, 0, 0, 0, loc)

	return revenuedomain.Window{
		Month:    m,
		Year:     y,
		Timezone: tzName,
		StartUTC: start.UTC(),
		EndUTC:   end.UTC(),
	}, nil
}
