package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"shelfscan/internal/domain/client"
	"shelfscan/internal/infra"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO clients (card_id, name, email) VALUES ($1, $2, $3)`,
		c.CardID(), c.Name(), c.Email().Value())
	if err != nil {
		return wrapWriteErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clients SET name = $2, email = $3 WHERE card_id = $1`,
		c.CardID(), c.Name(), c.Email().Value())
	if err != nil {
		return wrapWriteErr("failed to update client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, cardUID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE card_id = $1`, cardUID)
	if err != nil {
		return wrapWriteErr("failed to delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}
