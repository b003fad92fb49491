package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	revenuedomain "github.com/stayops/revenued/internal/revenue/domain"
	"github.com/stayops/revenued/internal/revenue/format"
	"github.com/stayops/revenued/pkg/tenantctx"
)

// GetDashboardSummary serves the monthly revenue summary for a property.
// month and year must be supplied together; omitting both reports the
// property's most recent month.
func (s *Server) GetDashboardSummary(c *gin.Context) {
	tenantID, ok := tenantctx.TenantID(c.Request.Context())
	if !ok || tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant not resolved for current request"})
		return
	}

	propertyID := strings.TrimSpace(c.Query("property_id"))
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_id is required"})
		return
	}

	month, err := queryInt(c, "month", 1, 12)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	year, err := queryInt(c, "year", 2000, 2100)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (month == nil) != (year == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both month and year must be provided together"})
		return
	}

	summary := s.cache.GetOrCompute(c.Request.Context(), revenuedomain.Query{
		PropertyID: propertyID,
		TenantID:   tenantID,
		Month:      month,
		Year:       year,
	})

	c.JSON(http.StatusOK, format.ToResponse(summary))
}

// GetRevenueTotal serves the all-time revenue for a property. The total
// endpoint bypasses the period cache; it has no stable period key.
func (s *Server) GetRevenueTotal(c *gin.Context) {
	tenantID, ok := tenantctx.TenantID(c.Request.Context())
	if !ok || tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant not resolved for current request"})
		return
	}

	propertyID := strings.TrimSpace(c.Query("property_id"))
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_id is required"})
		return
	}

	summary := s.revenue.ComputeTotal(c.Request.Context(), propertyID, tenantID)
	c.JSON(http.StatusOK, format.ToResponse(summary))
}

func queryInt(c *gin.Context, name string, min, max int) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	if value < min || value > max {
		return nil, fmt.Errorf("%s must be between %d and %d", name, min, max)
	}
	return &value, nil
}
