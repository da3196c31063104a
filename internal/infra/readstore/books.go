package readstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelfscan/internal/infra"
	"shelfscan/internal/usecase/queries"
)

type BookReadStore struct {
	pool *pgxpool.Pool
}

func NewBookReadStore(pool *pgxpool.Pool) *BookReadStore {
	return &BookReadStore{pool: pool}
}

func (r *BookReadStore) List(ctx context.Context) ([]queries.BookView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT card_id, title, author FROM books ORDER BY title`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	var views []queries.BookView
	for rows.Next() {
		var v queries.BookView
		if err := rows.Scan(&v.CardID, &v.Title, &v.Author); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate book rows", err)
	}
	return views, nil
}

func (r *BookReadStore) FindByCardUID(ctx context.Context, cardUID string) (*queries.BookView, error) {
	var v queries.BookView
	err := r.pool.QueryRow(ctx,
		`SELECT card_id, title, author FROM books WHERE card_id = $1`, cardUID).
		Scan(&v.CardID, &v.Title, &v.Author)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by card uid", err)
	}
	return &v, nil
}
