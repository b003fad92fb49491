package domain

import (
	"context"
	"time"
)

const DefaultCurrency = "USD"

// Source records whether a summary came from the reservation store or the
// degraded dataset, so callers and tests can tell the two apart without
// guessing from the figures.
type Source string

const (
	SourceFresh    Source = "fresh"
	SourceFallback Source = "fallback"
)

// Query identifies one summary request. Month and Year are either both set
// or both nil; mixed states are rejected at the HTTP boundary.
type Query struct {
	PropertyID string
	TenantID   string
	Month      *int
	Year       *int
}

// Window is one calendar month measured in a property's local timezone,
// expressed as the half-open UTC interval [StartUTC, EndUTC).
type Window struct {
	Month    int
	Year     int
	Timezone string
	StartUTC time.Time
	EndUTC   time.Time
}

// Summary is the canonical cached and returned revenue shape. Total is kept
// as a 2-decimal string so serialize/deserialize cycles cannot drift the
// amount through floating point.
type Summary struct {
	PropertyID     string `json:"property_id"`
	TenantID       string `json:"tenant_id"`
	Total          string `json:"total"`
	Currency       string `json:"currency"`
	Count          int64  `json:"count"`
	Month          *int   `json:"month,omitempty"`
	Year           *int   `json:"year,omitempty"`
	Timezone       string `json:"timezone,omitempty"`
	Source         Source `json:"source,omitempty"`
	FallbackReason string `json:"fallback_reason,omitempty"`
}

// Service aggregates revenue. Neither entrypoint ever fails: dependency
// errors degrade to the fallback dataset so the serving path stays
// available during store outages.
type Service interface {
	Compute(ctx context.Context, q Query) Summary
	ComputeTotal(ctx context.Context, propertyID, tenantID string) Summary
}

// Cache is the cache-aside coordinator in front of Service.
type Cache interface {
	GetOrCompute(ctx context.Context, q Query) Summary
}
