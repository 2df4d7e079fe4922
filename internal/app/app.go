package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/formsight/backend/internal/app/appconfig"
	"github.com/formsight/backend/internal/app/appcontext"
	"github.com/formsight/backend/internal/controller"
	"github.com/formsight/backend/internal/infra"
	"github.com/formsight/backend/internal/pkg/logger"
	"github.com/formsight/backend/internal/registry"
	"github.com/formsight/backend/internal/server"
	"github.com/formsight/backend/internal/service"
	"github.com/formsight/backend/internal/workers/reapwkr"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Sport profiles
		fx.Provide(registry.New),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits: keep those before controllers to ensure they are
		// initialized before controllers are registered, as controllers are also
		// fx#Invoke functions which are called in the order of their registration.
		fx.Invoke(infra.SentryInit),

		// Controllers
		controller.Module(),

		// Workers
		fx.Invoke(reapwkr.Start),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
