package components

import (
	"shelfscan/internal/handler"
	"shelfscan/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCardHandler,
		api.NewClientHandler,
		api.NewBookHandler,
		api.NewBorrowHandler,
		api.NewRfidHandler,
	),
	fx.Invoke(handler.NewRouter),
)
