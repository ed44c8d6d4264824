package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/hopeworks/donations/internal/app/api/server"
	"github.com/hopeworks/donations/internal/app/repository"
	"github.com/hopeworks/donations/internal/app/service/donation"
	"github.com/hopeworks/donations/internal/platform/db"
	"github.com/hopeworks/donations/internal/platform/stripe/stripe_gateway"
	"github.com/hopeworks/donations/pkg/config"
	"github.com/hopeworks/donations/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	repository.Module,
	stripe_gateway.Module,
	donation.Module,
)
