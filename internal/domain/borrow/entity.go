package borrow

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"shelfscan/internal/domain/card"
)

var (
	ErrAlreadyReturned = errors.New("borrow is already returned")
	ErrReturnBeforeOut = errors.New("return date precedes borrow date")
)

// LoanPeriod is how long a book may be kept out.
const LoanPeriod = 21 * 24 * time.Hour

// Borrow is one lending of one book to one client. A borrow is active
// until ReturnedAt is set; once returned it never changes again.
type Borrow struct {
	id           uuid.UUID
	bookCardID   string
	clientCardID string
	borrowedAt   time.Time
	dueDate      time.Time
	returnedAt   *time.Time
}

func NewBorrow(bookCardID, clientCardID string, borrowedAt time.Time) (*Borrow, error) {
	if err := card.ValidateUID(bookCardID); err != nil {
		return nil, err
	}
	if err := card.ValidateUID(clientCardID); err != nil {
		return nil, err
	}

	return &Borrow{
		id:           uuid.New(),
		bookCardID:   bookCardID,
		clientCardID: clientCardID,
		borrowedAt:   borrowedAt,
		dueDate:      borrowedAt.Add(LoanPeriod),
	}, nil
}

// Reconstruct rebuilds a borrow from persisted state. It bypasses
// creation-time validation because the row was validated on write.
func Reconstruct(id uuid.UUID, bookCardID, clientCardID string, borrowedAt, dueDate time.Time, returnedAt *time.Time) *Borrow {
	return &Borrow{
		id:           id,
		bookCardID:   bookCardID,
		clientCardID: clientCardID,
		borrowedAt:   borrowedAt,
		dueDate:      dueDate,
		returnedAt:   returnedAt,
	}
}

func (b *Borrow) Return(at time.Time) error {
	if b.returnedAt != nil {
		return ErrAlreadyReturned
	}
	if at.Before(b.borrowedAt) {
		return ErrReturnBeforeOut
	}
	b.returnedAt = &at
	return nil
}

func (b *Borrow) IsActive() bool {
	return b.returnedAt == nil
}

func (b *Borrow) IsOverdue(now time.Time) bool {
	return b.returnedAt == nil && now.After(b.dueDate)
}

func (b *Borrow) ID() uuid.UUID          { return b.id }
func (b *Borrow) BookCardID() string     { return b.bookCardID }
func (b *Borrow) ClientCardID() string   { return b.clientCardID }
func (b *Borrow) BorrowedAt() time.Time  { return b.borrowedAt }
func (b *Borrow) DueDate() time.Time     { return b.dueDate }
func (b *Borrow) ReturnedAt() *time.Time { return b.returnedAt }
