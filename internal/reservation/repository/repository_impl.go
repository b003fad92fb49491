package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	reservationdomain "github.com/stayops/revenued/internal/reservation/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB *gorm.DB
}

type Repository struct {
	db *gorm.DB
}

func New(p Params) reservationdomain.Repository {
	return &Repository{db: p.DB}
}

type timezoneRow struct {
	Timezone *string `gorm:"column:timezone"`
}

func (r *Repository) PropertyTimezone(ctx context.Context, propertyID, tenantID string) (string, error) {
	var row timezoneRow
	if err := r.db.WithContext(ctx).Raw(
		`SELECT timezone
		 FROM properties
		 WHERE id = ? AND tenant_id = ?`,
		propertyID,
		tenantID,
	).Scan(&row).Error; err != nil {
		return "", err
	}
	if row.Timezone == nil {
		return "", nil
	}
	return *row.Timezone, nil
}

type latestCheckInRow struct {
	CheckInDate *time.Time `gorm:"column:check_in_date"`
}

func (r *Repository) LatestCheckIn(ctx context.Context, propertyID, tenantID string) (*time.Time, error) {
	var row latestCheckInRow
	if err := r.db.WithContext(ctx).Raw(
		`SELECT check_in_date
		 FROM reservations
		 WHERE property_id = ? AND tenant_id = ?
		 ORDER BY check_in_date DESC
		 LIMIT 1`,
		propertyID,
		tenantID,
	).Scan(&row).Error; err != nil {
		return nil, err
	}
	return row.CheckInDate, nil
}

type totalsRow struct {
	TotalRevenue     decimal.NullDecimal `gorm:"column:total_revenue"`
	ReservationCount int64               `gorm:"column:reservation_count"`
}

func (r *Repository) TotalsBetween(ctx context.Context, propertyID, tenantID string, start, end time.Time) (reservationdomain.Totals, error) {
	var row totalsRow
	if err := r.db.WithContext(ctx).Raw(
		`SELECT SUM(total_amount) AS total_revenue,
		        COUNT(*) AS reservation_count
		 FROM reservations
		 WHERE property_id = ?
		   AND tenant_id = ?
		   AND check_in_date >= ?
		   AND check_in_date < ?`,
		propertyID,
		tenantID,
		start,
		end,
	).Scan(&row).Error; err != nil {
		return reservationdomain.Totals{}, err
	}
	return row.totals(), nil
}

func (r *Repository) TotalsAllTime(ctx context.Context, propertyID, tenantID string) (reservationdomain.Totals, error) {
	var row totalsRow
	if err := r.db.WithContext(ctx).Raw(
		`SELECT SUM(total_amount) AS total_revenue,
		        COUNT(*) AS reservation_count
		 FROM reservations
		 WHERE property_id = ? AND tenant_id = ?`,
		propertyID,
		tenantID,
	).Scan(&row).Error; err != nil {
		return reservationdomain.Totals{}, err
	}
	return row.totals(), nil
}

func (row totalsRow) totals() reservationdomain.Totals {
	total := decimal.Zero
	if row.TotalRevenue.Valid {
		total = row.TotalRevenue.Decimal
	}
	return reservationdomain.Totals{Total: total, Count: row.ReservationCount}
}
