package components

import (
	"shelfscan/internal/pkg/clock"
	"shelfscan/internal/usecase/commands"
	"shelfscan/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		fx.Annotate(
			queries.NewLibraryQueries,
			fx.As(new(queries.LibraryReader)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			commands.NewCardCommands,
			fx.As(new(commands.CardUseCase)),
		),
		fx.Annotate(
			commands.NewClientCommands,
			fx.As(new(commands.ClientUseCase)),
		),
		fx.Annotate(
			commands.NewBookCommands,
			fx.As(new(commands.BookUseCase)),
		),
		fx.Annotate(
			commands.NewBorrowCommands,
			fx.As(new(commands.BorrowUseCase)),
		),
		fx.Annotate(
			commands.NewScanFlows,
			fx.As(new(commands.ScanUseCase)),
		),
	),
)
