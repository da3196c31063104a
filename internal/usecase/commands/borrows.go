package commands

import (
	"context"

	"github.com/google/uuid"

	"shelfscan/internal/domain/borrow"
	"shelfscan/internal/infra"
	"shelfscan/internal/pkg/clock"
	"shelfscan/internal/pkg/errs"
	"shelfscan/internal/usecase/queries"
)

type BorrowCommands struct {
	borrows    BorrowRepository
	borrowRead queries.BorrowReadStore
	clientRead queries.ClientReadStore
	bookRead   queries.BookReadStore
	clock      clock.Clock
}

func NewBorrowCommands(
	borrows BorrowRepository,
	borrowRead queries.BorrowReadStore,
	clientRead queries.ClientReadStore,
	bookRead queries.BookReadStore,
	clk clock.Clock,
) *BorrowCommands {
	return &BorrowCommands{
		borrows:    borrows,
		borrowRead: borrowRead,
		clientRead: clientRead,
		bookRead:   bookRead,
		clock:      clk,
	}
}

// Borrow lends a book to a client. A book can only be out once: an
// existing active borrow rejects the request.
func (c *BorrowCommands) Borrow(ctx context.Context, bookCardID, clientCardID string) (*queries.BorrowView, error) {
	if _, err := c.bookRead.FindByCardUID(ctx, bookCardID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if _, err := c.clientRead.FindByCardUID(ctx, clientCardID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrClientNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	_, err := c.borrowRead.FindActiveByBookCardID(ctx, bookCardID)
	if err == nil {
		return nil, errs.ErrBookBorrowed
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := borrow.NewBorrow(bookCardID, clientCardID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.borrows.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.borrowRead.FindByID(ctx, entity.ID())
}

// Return closes a borrow. Returning twice fails with ErrAlreadyReturned.
func (c *BorrowCommands) Return(ctx context.Context, id uuid.UUID) (*queries.BorrowView, error) {
	view, err := c.borrowRead.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBorrowNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.ReturnedAt != nil {
		return nil, errs.ErrAlreadyReturned
	}

	if err := c.borrows.MarkReturned(ctx, id, c.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Lost a race with a concurrent return.
			return nil, errs.Mark(err, errs.ErrAlreadyReturned)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.borrowRead.FindByID(ctx, id)
}
