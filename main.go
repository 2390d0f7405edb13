package main

import (
	"flag"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/hmse-unipi/portal/internal/config"
	"github.com/hmse-unipi/portal/internal/logging"
	"github.com/hmse-unipi/portal/internal/portal"
)

func main() {
	var path = flag.String("config", string(config.DefaultPath), "path to the YAML config file")
	flag.Parse()

	newPath := func() config.Path {
		return config.Path(*path)
	}

	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(
			newPath,
			config.New,
			logging.New,
		),
		portal.Module,
		fx.Invoke(portal.RegisterHooks),
	)

	app.Run()
}
