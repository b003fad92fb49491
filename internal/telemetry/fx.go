package telemetry

import "go.uber.org/fx"

// Module wires Prometheus metrics.
var Module = fx.Module("telemetry",
	fx.Provide(NewMetrics),
)
