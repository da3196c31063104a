package bootstrap

import (
	"context"
	"log/slog"

	"shelfscan/internal/bus"
	"shelfscan/internal/pkg/config"
	"shelfscan/internal/rfid"

	"go.uber.org/fx"
)

var BusModule = fx.Module("bus",
	fx.Provide(
		NewBusClient,
		NewTopics,
		func(c *bus.Client) rfid.Bus { return c },
	),
)

func NewTopics(cfg config.Config) bus.Topics {
	return bus.TopicsForDevice(cfg.Bus.DevicePrefix)
}

func NewBusClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *bus.Client {
	client := bus.NewClient(cfg.Bus, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return client.Connect()
		},
		OnStop: func(_ context.Context) error {
			client.Close()
			return nil
		},
	})

	return client
}
