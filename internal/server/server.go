package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stayops/revenued/internal/config"
	revenuedomain "github.com/stayops/revenued/internal/revenue/domain"
	"github.com/stayops/revenued/internal/telemetry"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(metrics *telemetry.Metrics, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLog(log))
	r.Use(RequestMetrics(metrics))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type ServerParams struct {
	fx.In

	Engine  *gin.Engine
	Cfg     config.Config
	Log     *zap.Logger
	Cache   revenuedomain.Cache
	Revenue revenuedomain.Service
}

type Server struct {
	engine  *gin.Engine
	cfg     config.Config
	log     *zap.Logger
	cache   revenuedomain.Cache
	revenue revenuedomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:  p.Engine,
		cfg:     p.Cfg,
		log:     p.Log.Named("http.server"),
		cache:   p.Cache,
		revenue: p.Revenue,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/v1", TenantContext())
	v1.GET("/dashboard/summary", s.GetDashboardSummary)
	v1.GET("/dashboard/revenue/total", s.GetRevenueTotal)
}
