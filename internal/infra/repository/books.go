package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"shelfscan/internal/domain/book"
	"shelfscan/internal/infra"
)

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO books (card_id, title, author) VALUES ($1, $2, $3)`,
		b.CardID(), b.Title(), b.Author())
	if err != nil {
		return wrapWriteErr("failed to create book", err)
	}
	return nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE books SET title = $2, author = $3 WHERE card_id = $1`,
		b.CardID(), b.Title(), b.Author())
	if err != nil {
		return wrapWriteErr("failed to update book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, cardUID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE card_id = $1`, cardUID)
	if err != nil {
		return wrapWriteErr("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}
