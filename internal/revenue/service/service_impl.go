package service

import (
	"context"
	"time"

	reservationdomain "github.com/stayops/revenued/internal/reservation/domain"
	revenuedomain "github.com/stayops/revenued/internal/revenue/domain"
	"github.com/stayops/revenued/internal/revenue/fallback"
	"github.com/stayops/revenued/internal/revenue/window"
	"github.com/stayops/revenued/internal/telemetry"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Store    reservationdomain.Repository
	Resolver *window.Resolver
	Fallback fallback.Dataset
	Log      *zap.Logger
	Metrics  *telemetry.Metrics `optional:"true"`
}

type Service struct {
	store    reservationdomain.Repository
	resolver *window.Resolver
	fallback fallback.Dataset
	log      *zap.Logger
	metrics  *telemetry.Metrics
}

func New(p Params) revenuedomain.Service {
	return &Service{
		store:    p.Store,
		resolver: p.Resolver,
		fallback: p.Fallback,
		log:      p.Log.Named("revenue.service"),
		metrics:  p.Metrics,
	}
}

// Compute aggregates one local calendar month of revenue. Store failures
// degrade to the fallback dataset; the caller always gets a well-formed
// summary.
func (s *Service) Compute(ctx context.Context, q revenuedomain.Query) revenuedomain.Summary {
	win, err := s.resolver.Resolve(ctx, q.PropertyID, q.TenantID, q.Month, q.Year)
	if err != nil {
		return s.degraded(q.PropertyID, q.TenantID, q.Month, q.Year, "UTC", err)
	}

	started := time.Now()
	totals, err := s.store.TotalsBetween(ctx, q.PropertyID, q.TenantID, win.StartUTC, win.EndUTC)
	s.metrics.ObserveAggregation(time.Since(started))
	if err != nil {
		month, year := win.Month, win.Year
		return s.degraded(q.PropertyID, q.TenantID, &month, &year, "UTC", err)
	}

	month, year := win.Month, win.Year
	return revenuedomain.Summary{
		PropertyID: q.PropertyID,
		TenantID:   q.TenantID,
		Total:      totals.Total.StringFixed(2),
		Currency:   revenuedomain.DefaultCurrency,
		Count:      totals.Count,
		Month:      &month,
		Year:       &year,
		Timezone:   win.Timezone,
		Source:     revenuedomain.SourceFresh,
	}
}

// ComputeTotal aggregates over all time, with the same degradation policy.
func (s *Service) ComputeTotal(ctx context.Context, propertyID, tenantID string) revenuedomain.Summary {
	started := time.Now()
	totals, err := s.store.TotalsAllTime(ctx, propertyID, tenantID)
	s.metrics.ObserveAggregation(time.Since(started))
	if err != nil {
		return s.degraded(propertyID, tenantID, nil, nil, "", err)
	}

	return revenuedomain.Summary{
		PropertyID: propertyID,
		TenantID:   tenantID,
		Total:      totals.Total.StringFixed(2),
		Currency:   revenuedomain.DefaultCurrency,
		Count:      totals.Count,
		Source:     revenuedomain.SourceFresh,
	}
}

func (s *Service) degraded(propertyID, tenantID string, month, year *int, tz string, cause error) revenuedomain.Summary {
	s.log.Warn("reservation store unavailable, serving fallback revenue",
		zap.String("property_id", propertyID),
		zap.String("tenant_id", tenantID),
		zap.Error(cause),
	)
	s.metrics.FallbackServed(propertyID)

	entry := s.fallback.Lookup(propertyID)
	return revenuedomain.Summary{
		PropertyID:     propertyID,
		TenantID:       tenantID,
		Total:          entry.Total,
		Currency:       revenuedomain.DefaultCurrency,
		Count:          entry.Count,
		Month:          month,
		Year:           year,
		Timezone:       tz,
		Source:         revenuedomain.SourceFallback,
		FallbackReason: cause.Error(),
	}
}
