package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelfscan/internal/infra"
	"shelfscan/internal/usecase/queries"
)

const borrowSelect = `
	SELECT b.id, b.book_card_id, bk.title, b.client_card_id, c.name,
	       b.borrowed_at, b.due_date, b.returned_at
	FROM borrows b
	JOIN books bk ON bk.card_id = b.book_card_id
	JOIN clients c ON c.card_id = b.client_card_id`

type BorrowReadStore struct {
	pool *pgxpool.Pool
}

func NewBorrowReadStore(pool *pgxpool.Pool) *BorrowReadStore {
	return &BorrowReadStore{pool: pool}
}

func (r *BorrowReadStore) List(ctx context.Context) ([]queries.BorrowView, error) {
	return scanBorrowRows(ctx, r.pool, borrowSelect+` ORDER BY b.borrowed_at DESC`)
}

func (r *BorrowReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BorrowView, error) {
	var v queries.BorrowView
	err := r.pool.QueryRow(ctx, borrowSelect+` WHERE b.id = $1`, id).
		Scan(&v.ID, &v.BookCardID, &v.BookTitle, &v.ClientCardID, &v.ClientName,
			&v.BorrowedAt, &v.DueDate, &v.ReturnedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("borrow not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find borrow by id", err)
	}
	return &v, nil
}

func (r *BorrowReadStore) FindByClientCardID(ctx context.Context, cardUID string) ([]queries.BorrowView, error) {
	return scanBorrowRows(ctx, r.pool,
		borrowSelect+` WHERE b.client_card_id = $1 ORDER BY b.borrowed_at DESC`, cardUID)
}

func (r *BorrowReadStore) FindByBookCardID(ctx context.Context, cardUID string) ([]queries.BorrowView, error) {
	return scanBorrowRows(ctx, r.pool,
		borrowSelect+` WHERE b.book_card_id = $1 ORDER BY b.borrowed_at DESC`, cardUID)
}

func (r *BorrowReadStore) FindActiveByClientCardID(ctx context.Context, cardUID string) ([]queries.BorrowView, error) {
	return scanBorrowRows(ctx, r.pool,
		borrowSelect+` WHERE b.client_card_id = $1 AND b.returned_at IS NULL ORDER BY b.borrowed_at DESC`, cardUID)
}

// FindActiveByBookCardID returns the single active borrow of a book, or
// a NOT_FOUND error: a book has at most one unreturned borrow at a time.
func (r *BorrowReadStore) FindActiveByBookCardID(ctx context.Context, cardUID string) (*queries.BorrowView, error) {
	var v queries.BorrowView
	err := r.pool.QueryRow(ctx,
		borrowSelect+` WHERE b.book_card_id = $1 AND b.returned_at IS NULL`, cardUID).
		Scan(&v.ID, &v.BookCardID, &v.BookTitle, &v.ClientCardID, &v.ClientName,
			&v.BorrowedAt, &v.DueDate, &v.ReturnedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("active borrow not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active borrow", err)
	}
	return &v, nil
}

func scanBorrowRows(ctx context.Context, pool *pgxpool.Pool, sql string, args ...any) ([]queries.BorrowView, error) {
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query borrows", err)
	}
	defer rows.Close()

	views := []queries.BorrowView{}
	for rows.Next() {
		var v queries.BorrowView
		if err := rows.Scan(&v.ID, &v.BookCardID, &v.BookTitle, &v.ClientCardID, &v.ClientName,
			&v.BorrowedAt, &v.DueDate, &v.ReturnedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan borrow row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate borrow rows", err)
	}
	return views, nil
}
