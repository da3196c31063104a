package readstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelfscan/internal/infra"
	"shelfscan/internal/usecase/queries"
)

type ClientReadStore struct {
	pool *pgxpool.Pool
}

func NewClientReadStore(pool *pgxpool.Pool) *ClientReadStore {
	return &ClientReadStore{pool: pool}
}

func (r *ClientReadStore) List(ctx context.Context) ([]queries.ClientDetailView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT card_id, name, email FROM clients ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	var views []queries.ClientDetailView
	index := make(map[string]int)
	for rows.Next() {
		var v queries.ClientDetailView
		if err := rows.Scan(&v.CardID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan client row", err)
		}
		v.Borrows = []queries.BorrowView{}
		index[v.CardID] = len(views)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate client rows", err)
	}

	borrows, err := scanBorrowRows(ctx, r.pool,
		`SELECT b.id, b.book_card_id, bk.title, b.client_card_id, c.name,
		        b.borrowed_at, b.due_date, b.returned_at
		 FROM borrows b
		 JOIN books bk ON bk.card_id = b.book_card_id
		 JOIN clients c ON c.card_id = b.client_card_id
		 ORDER BY b.borrowed_at DESC`)
	if err != nil {
		return nil, err
	}
	for _, bv := range borrows {
		if i, ok := index[bv.ClientCardID]; ok {
			views[i].Borrows = append(views[i].Borrows, bv)
		}
	}
	return views, nil
}

func (r *ClientReadStore) FindByCardUID(ctx context.Context, cardUID string) (*queries.ClientDetailView, error) {
	var v queries.ClientDetailView
	err := r.pool.QueryRow(ctx,
		`SELECT card_id, name, email FROM clients WHERE card_id = $1`, cardUID).
		Scan(&v.CardID, &v.Name, &v.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by card uid", err)
	}

	borrows, err := scanBorrowRows(ctx, r.pool,
		`SELECT b.id, b.book_card_id, bk.title, b.client_card_id, c.name,
		        b.borrowed_at, b.due_date, b.returned_at
		 FROM borrows b
		 JOIN books bk ON bk.card_id = b.book_card_id
		 JOIN clients c ON c.card_id = b.client_card_id
		 WHERE b.client_card_id = $1
		 ORDER BY b.borrowed_at DESC`, cardUID)
	if err != nil {
		return nil, err
	}
	v.Borrows = borrows
	return &v, nil
}
