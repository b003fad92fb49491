package reservation

import (
	"github.com/stayops/revenued/internal/reservation/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("reservation",
	fx.Provide(repository.New),
)
