package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stayops/revenued/internal/telemetry"
	"github.com/stayops/revenued/pkg/tenantctx"
	"go.uber.org/zap"
)

const (
	HeaderTenant = "X-Tenant-ID"
)

// TenantContext copies the tenant id resolved by the upstream auth layer
// into the request context. Requests without one are not rejected here;
// handlers decide whether a tenant is required.
func TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant := strings.TrimSpace(c.GetHeader(HeaderTenant))
		if tenant != "" {
			ctx := tenantctx.WithTenantID(c.Request.Context(), tenant)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func RequestLog(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http.access")
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(started)),
		)
	}
}

func RequestMetrics(metrics *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		metrics.ObserveRequest(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
			time.Since(started),
		)
	}
}
