package bootstrap

import (
	"context"
	"log/slog"

	"shelfscan/internal/gateway"
	"shelfscan/internal/rfid"
	"shelfscan/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewHub,
		func(h *gateway.Hub) rfid.Notifier { return h },
		func(h *gateway.Hub) commands.Notifier { return h },
	),
)

func NewHub(lc fx.Lifecycle, logger *slog.Logger) *gateway.Hub {
	hub := gateway.NewHub(logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})

	return hub
}
