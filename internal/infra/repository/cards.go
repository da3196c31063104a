package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"shelfscan/internal/domain/card"
	"shelfscan/internal/infra"
)

type CardRepository struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

func (r *CardRepository) Create(ctx context.Context, c *card.Card) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO cards (uid, created_at) VALUES ($1, $2)`,
		c.UID(), c.CreatedAt())
	if err != nil {
		return wrapWriteErr("failed to create card", err)
	}
	return nil
}

// CreateIfMissing registers a card on first sight. Scan flows call this
// for uids the reader reports but the directory has never seen.
func (r *CardRepository) CreateIfMissing(ctx context.Context, c *card.Card) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO cards (uid, created_at) VALUES ($1, $2)
		 ON CONFLICT (uid) DO NOTHING`,
		c.UID(), c.CreatedAt())
	if err != nil {
		return wrapWriteErr("failed to ensure card", err)
	}
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, uid string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE uid = $1`, uid)
	if err != nil {
		return wrapWriteErr("failed to delete card", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("card not found", nil, infra.KindNotFound)
	}
	return nil
}
