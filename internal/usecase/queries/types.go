package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models returned to handlers. Views are denormalized where the UI
// needs joined data (borrow rows carry book title and client name).

type CardView struct {
	UID       string
	CreatedAt time.Time
}

type ClientView struct {
	CardID string
	Name   string
	Email  string
}

type BookView struct {
	CardID string
	Title  string
	Author string
}

type BorrowView struct {
	ID           uuid.UUID
	BookCardID   string
	BookTitle    string
	ClientCardID string
	ClientName   string
	BorrowedAt   time.Time
	DueDate      time.Time
	ReturnedAt   *time.Time
}

func (v BorrowView) IsActive() bool {
	return v.ReturnedAt == nil
}

// ClientDetailView is a client plus their borrow history.
type ClientDetailView struct {
	ClientView
	Borrows []BorrowView
}
