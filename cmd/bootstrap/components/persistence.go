package components

import (
	"shelfscan/internal/infra/readstore"
	"shelfscan/internal/infra/repository"
	"shelfscan/internal/rfid"
	"shelfscan/internal/usecase/commands"
	"shelfscan/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCardReadStore,
			fx.As(new(queries.CardReadStore)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
		),
		fx.Annotate(
			readstore.NewBorrowReadStore,
			fx.As(new(queries.BorrowReadStore)),
		),
		fx.Annotate(
			readstore.NewDirectoryAdapter,
			fx.As(new(rfid.Directory)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCardRepository,
			fx.As(new(commands.CardRepository)),
		),
		fx.Annotate(
			repository.NewClientRepository,
			fx.As(new(commands.ClientRepository)),
		),
		fx.Annotate(
			repository.NewBookRepository,
			fx.As(new(commands.BookRepository)),
		),
		fx.Annotate(
			repository.NewBorrowRepository,
			fx.As(new(commands.BorrowRepository)),
		),
	),
)
