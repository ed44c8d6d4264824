package repository

import "go.uber.org/fx"

// Module provides the gorm-backed donation store.
var Module = fx.Options(
	fx.Provide(NewDonationRepository),
)
