// Package queries holds the read side of the usecase layer: view types,
// read-store contracts and thin services mapping infra errors to domain
// sentinels.
package queries

import (
	"context"

	"github.com/google/uuid"

	"shelfscan/internal/infra"
	"shelfscan/internal/pkg/errs"
)

type CardReadStore interface {
	List(ctx context.Context) ([]CardView, error)
	FindByUID(ctx context.Context, uid string) (*CardView, error)
}

type ClientReadStore interface {
	List(ctx context.Context) ([]ClientDetailView, error)
	FindByCardUID(ctx context.Context, cardUID string) (*ClientDetailView, error)
}

type BookReadStore interface {
	List(ctx context.Context) ([]BookView, error)
	FindByCardUID(ctx context.Context, cardUID string) (*BookView, error)
}

type BorrowReadStore interface {
	List(ctx context.Context) ([]BorrowView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BorrowView, error)
	FindByClientCardID(ctx context.Context, cardUID string) ([]BorrowView, error)
	FindByBookCardID(ctx context.Context, cardUID string) ([]BorrowView, error)
	FindActiveByClientCardID(ctx context.Context, cardUID string) ([]BorrowView, error)
	FindActiveByBookCardID(ctx context.Context, cardUID string) (*BorrowView, error)
}

// LibraryReader is the read surface the HTTP handlers depend on.
type LibraryReader interface {
	ListCards(ctx context.Context) ([]CardView, error)
	GetCard(ctx context.Context, uid string) (*CardView, error)
	ListClients(ctx context.Context) ([]ClientDetailView, error)
	GetClient(ctx context.Context, cardUID string) (*ClientDetailView, error)
	ListBooks(ctx context.Context) ([]BookView, error)
	GetBook(ctx context.Context, cardUID string) (*BookView, error)
	ListBorrows(ctx context.Context) ([]BorrowView, error)
	GetBorrow(ctx context.Context, id uuid.UUID) (*BorrowView, error)
	BorrowsForClient(ctx context.Context, cardUID string) ([]BorrowView, error)
	BorrowsForBook(ctx context.Context, cardUID string) ([]BorrowView, error)
}

// LibraryQueries bundles the read operations the HTTP surface exposes.
type LibraryQueries struct {
	cards   CardReadStore
	clients ClientReadStore
	books   BookReadStore
	borrows BorrowReadStore
}

func NewLibraryQueries(cards CardReadStore, clients ClientReadStore, books BookReadStore, borrows BorrowReadStore) *LibraryQueries {
	return &LibraryQueries{
		cards:   cards,
		clients: clients,
		books:   books,
		borrows: borrows,
	}
}

func (q *LibraryQueries) ListCards(ctx context.Context) ([]CardView, error) {
	return q.cards.List(ctx)
}

func (q *LibraryQueries) GetCard(ctx context.Context, uid string) (*CardView, error) {
	v, err := q.cards.FindByUID(ctx, uid)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCardNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *LibraryQueries) ListClients(ctx context.Context) ([]ClientDetailView, error) {
	return q.clients.List(ctx)
}

func (q *LibraryQueries) GetClient(ctx context.Context, cardUID string) (*ClientDetailView, error) {
	v, err := q.clients.FindByCardUID(ctx, cardUID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrClientNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *LibraryQueries) ListBooks(ctx context.Context) ([]BookView, error) {
	return q.books.List(ctx)
}

func (q *LibraryQueries) GetBook(ctx context.Context, cardUID string) (*BookView, error) {
	v, err := q.books.FindByCardUID(ctx, cardUID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *LibraryQueries) ListBorrows(ctx context.Context) ([]BorrowView, error) {
	return q.borrows.List(ctx)
}

func (q *LibraryQueries) GetBorrow(ctx context.Context, id uuid.UUID) (*BorrowView, error) {
	v, err := q.borrows.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBorrowNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *LibraryQueries) BorrowsForClient(ctx context.Context, cardUID string) ([]BorrowView, error) {
	return q.borrows.FindByClientCardID(ctx, cardUID)
}

func (q *LibraryQueries) BorrowsForBook(ctx context.Context, cardUID string) ([]BorrowView, error) {
	return q.borrows.FindByBookCardID(ctx, cardUID)
}
