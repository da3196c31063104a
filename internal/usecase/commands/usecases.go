package commands

import (
	"context"

	"github.com/google/uuid"

	"shelfscan/internal/rfid"
	"shelfscan/internal/usecase/queries"
)

// Handler-facing contracts. Implementations live in this package;
// handler tests mock these.

type CardUseCase interface {
	Create(ctx context.Context, uid string) error
	Delete(ctx context.Context, uid string) error
}

type ClientUseCase interface {
	Update(ctx context.Context, cardUID string, params UpdateClientParams) (*queries.ClientDetailView, error)
	Delete(ctx context.Context, cardUID string) error
}

type BookUseCase interface {
	Update(ctx context.Context, cardUID string, params UpdateBookParams) (*queries.BookView, error)
	Delete(ctx context.Context, cardUID string) error
}

type BorrowUseCase interface {
	Borrow(ctx context.Context, bookCardID, clientCardID string) (*queries.BorrowView, error)
	Return(ctx context.Context, id uuid.UUID) (*queries.BorrowView, error)
}

type ScanUseCase interface {
	RegisterClient(ctx context.Context, params RegisterClientParams) (*RegisterClientResult, error)
	RegisterBook(ctx context.Context, params RegisterBookParams) (*RegisterBookResult, error)
	ScanCard(ctx context.Context) rfid.Outcome
	RequestRegisterScan(ctx context.Context) rfid.Outcome
	RequestRegisterBookScan(ctx context.Context) rfid.Outcome
	ReturnByScan(ctx context.Context) (*ReturnByScanResult, error)
	CancelScan()
}
