// Package readstore implements the query-side persistence contracts with
// hand-written pgx SQL.
package readstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelfscan/internal/infra"
	"shelfscan/internal/usecase/queries"
)

type CardReadStore struct {
	pool *pgxpool.Pool
}

func NewCardReadStore(pool *pgxpool.Pool) *CardReadStore {
	return &CardReadStore{pool: pool}
}

func (r *CardReadStore) List(ctx context.Context) ([]queries.CardView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT uid, created_at FROM cards ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cards", err)
	}
	defer rows.Close()

	var views []queries.CardView
	for rows.Next() {
		var v queries.CardView
		if err := rows.Scan(&v.UID, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan card row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate card rows", err)
	}
	return views, nil
}

func (r *CardReadStore) FindByUID(ctx context.Context, uid string) (*queries.CardView, error) {
	var v queries.CardView
	err := r.pool.QueryRow(ctx,
		`SELECT uid, created_at FROM cards WHERE uid = $1`, uid).
		Scan(&v.UID, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find card by uid", err)
	}
	return &v, nil
}
