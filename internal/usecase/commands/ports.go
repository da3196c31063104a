// Package commands holds the write side of the usecase layer.
package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shelfscan/internal/domain/book"
	"shelfscan/internal/domain/borrow"
	"shelfscan/internal/domain/card"
	"shelfscan/internal/domain/client"
	"shelfscan/internal/rfid"
)

type CardRepository interface {
	Create(ctx context.Context, c *card.Card) error
	CreateIfMissing(ctx context.Context, c *card.Card) error
	Delete(ctx context.Context, uid string) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) error
	Update(ctx context.Context, c *client.Client) error
	Delete(ctx context.Context, cardUID string) error
}

type BookRepository interface {
	Create(ctx context.Context, b *book.Book) error
	Update(ctx context.Context, b *book.Book) error
	Delete(ctx context.Context, cardUID string) error
}

type BorrowRepository interface {
	Create(ctx context.Context, b *borrow.Borrow) error
	MarkReturned(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Scanner is the scan correlator as the flows consume it.
type Scanner interface {
	Scan(ctx context.Context, policy rfid.Policy, opts ...rfid.ScanOption) rfid.Outcome
	CancelScan()
}

// Notifier pushes flow results to connected UI observers.
type Notifier interface {
	Broadcast(event string, data any)
}
