package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is a rentable unit owned by a tenant. Timezone holds an IANA
// zone name ("America/New_York") and may be empty for legacy rows.
type Property struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	TenantID  string    `gorm:"column:tenant_id;index" json:"tenant_id"`
	Name      string    `gorm:"column:name" json:"name"`
	Timezone  string    `gorm:"column:timezone" json:"timezone"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Property) TableName() string { return "properties" }

// Reservation is a stay booked against a property. CheckInDate is stored
// in UTC; monthly attribution is decided by the property's local calendar.
type Reservation struct {
	ID           string          `gorm:"column:id;primaryKey" json:"id"`
	PropertyID   string          `gorm:"column:property_id;index" json:"property_id"`
	TenantID     string          `gorm:"column:tenant_id;index" json:"tenant_id"`
	GuestName    string          `gorm:"column:guest_name" json:"guest_name"`
	CheckInDate  time.Time       `gorm:"column:check_in_date;index" json:"check_in_date"`
	CheckOutDate time.Time       `gorm:"column:check_out_date" json:"check_out_date"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2)" json:"total_amount"`
	Status       string          `gorm:"column:status" json:"status"`
	CreatedAt    time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (Reservation) TableName() string { return "reservations" }

// Totals is the result of a sum/count aggregation over reservations.
type Totals struct {
	Total decimal.Decimal
	Count int64
}
