package stripe_gateway

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hopeworks/donations/internal/app/service/donation"
	"github.com/hopeworks/donations/pkg/config"
)

// Module provides the Stripe adapter as the donation gateway port.
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, log *zap.SugaredLogger) (donation.Gateway, error) {
		return New(cfg, log)
	}),
)
