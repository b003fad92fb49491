package main

import (
	"github.com/stayops/revenued/internal/clock"
	"github.com/stayops/revenued/internal/config"
	"github.com/stayops/revenued/internal/logger"
	"github.com/stayops/revenued/internal/reservation"
	"github.com/stayops/revenued/internal/revenue"
	"github.com/stayops/revenued/internal/server"
	"github.com/stayops/revenued/internal/telemetry"
	"github.com/stayops/revenued/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		telemetry.Module,
		db.Module,
		clock.Module,

		// Functional domains
		reservation.Module,
		revenue.Module,
		server.Module,
	)
	app.Run()
}
