package bootstrap

import (
	"context"
	"log/slog"

	"shelfscan/internal/bus"
	"shelfscan/internal/pkg/config"
	"shelfscan/internal/rfid"
	"shelfscan/internal/usecase/commands"

	"go.uber.org/fx"
)

var RfidModule = fx.Module("rfid",
	fx.Provide(
		fx.Annotate(
			NewScanCorrelator,
			fx.As(new(commands.Scanner)),
		),
	),
	fx.Invoke(StartAnnouncer),
)

func NewScanCorrelator(lc fx.Lifecycle, b rfid.Bus, dir rfid.Directory, topics bus.Topics, cfg config.Config, logger *slog.Logger) *rfid.Correlator {
	correlator := rfid.NewCorrelator(b, dir, topics, cfg.Bus.ScanTimeout, logger)

	// Shutdown aborts pending scans so blocked handlers can drain.
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			correlator.Close()
			return nil
		},
	})

	return correlator
}

func StartAnnouncer(lc fx.Lifecycle, b rfid.Bus, dir rfid.Directory, notifier rfid.Notifier, topics bus.Topics, cfg config.Config, logger *slog.Logger) {
	announcer := rfid.NewAnnouncer(b, dir, notifier, topics, cfg.Bus.GreenDelay, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			announcer.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			announcer.Stop()
			return nil
		},
	})
}
