package bootstrap

import (
	"shelfscan/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	BusModule,
	GatewayModule,
	RfidModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
