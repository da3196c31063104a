package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelfscan/internal/domain/borrow"
	"shelfscan/internal/infra"
)

type BorrowRepository struct {
	pool *pgxpool.Pool
}

func NewBorrowRepository(pool *pgxpool.Pool) *BorrowRepository {
	return &BorrowRepository{pool: pool}
}

func (r *BorrowRepository) Create(ctx context.Context, b *borrow.Borrow) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO borrows (id, book_card_id, client_card_id, borrowed_at, due_date, returned_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.BookCardID(), b.ClientCardID(), b.BorrowedAt(), b.DueDate(), b.ReturnedAt())
	if err != nil {
		return wrapWriteErr("failed to create borrow", err)
	}
	return nil
}

// MarkReturned closes a borrow. The returned_at IS NULL guard makes the
// operation safe against double returns racing each other.
func (r *BorrowRepository) MarkReturned(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE borrows SET returned_at = $2 WHERE id = $1 AND returned_at IS NULL`,
		id, at)
	if err != nil {
		return wrapWriteErr("failed to mark borrow returned", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("borrow not open", nil, infra.KindNotFound)
	}
	return nil
}
