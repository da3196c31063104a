package commands

import (
	"context"

	"shelfscan/internal/domain/book"
	"shelfscan/internal/infra"
	"shelfscan/internal/pkg/errs"
	"shelfscan/internal/usecase/queries"
)

type UpdateBookParams struct {
	Title  *string
	Author *string
}

type BookCommands struct {
	books    BookRepository
	bookRead queries.BookReadStore
}

func NewBookCommands(books BookRepository, bookRead queries.BookReadStore) *BookCommands {
	return &BookCommands{books: books, bookRead: bookRead}
}

func (c *BookCommands) Update(ctx context.Context, cardUID string, params UpdateBookParams) (*queries.BookView, error) {
	current, err := c.bookRead.FindByCardUID(ctx, cardUID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	title := current.Title
	if params.Title != nil {
		title = *params.Title
	}
	author := current.Author
	if params.Author != nil {
		author = *params.Author
	}

	entity, err := book.NewBook(cardUID, title, author)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.books.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.bookRead.FindByCardUID(ctx, cardUID)
}

func (c *BookCommands) Delete(ctx context.Context, cardUID string) error {
	if err := c.books.Delete(ctx, cardUID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
