package donation

import "go.uber.org/fx"

// Module exposes the donation lifecycle service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
