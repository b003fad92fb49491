package revenue

import (
	"github.com/stayops/revenued/internal/revenue/cache"
	"github.com/stayops/revenued/internal/revenue/fallback"
	"github.com/stayops/revenued/internal/revenue/service"
	"github.com/stayops/revenued/internal/revenue/window"
	"go.uber.org/fx"
)

var Module = fx.Module("revenue",
	fx.Provide(fallback.Default),
	fx.Provide(window.NewResolver),
	fx.Provide(service.New),
	fx.Provide(cache.NewStore),
	fx.Provide(cache.New),
)
