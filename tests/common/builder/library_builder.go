//go:build unit || e2e

package builder

import (
	"time"

	reqdto "shelfscan/internal/handler/dto/request"
	"shelfscan/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientBuilder struct {
	CardID string
	Name   string
	Email  string
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		CardID: "04a1b2c3",
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) BuildDetailView() *queries.ClientDetailView {
	return &queries.ClientDetailView{
		ClientView: queries.ClientView{
			CardID: b.CardID,
			Name:   b.Name,
			Email:  b.Email,
		},
		Borrows: []queries.BorrowView{},
	}
}

func (b *ClientBuilder) BuildRegisterRequestDTO() reqdto.RegisterClientRequest {
	return reqdto.RegisterClientRequest{Name: b.Name, Email: b.Email}
}

type BookBuilder struct {
	CardID string
	Title  string
	Author string
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		CardID: "04d4e5f6",
		Title:  "The Go Programming Language",
		Author: "Donovan & Kernighan",
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{CardID: b.CardID, Title: b.Title, Author: b.Author}
}

func (b *BookBuilder) BuildRegisterRequestDTO() reqdto.RegisterBookRequest {
	return reqdto.RegisterBookRequest{Title: b.Title, Author: b.Author}
}

type BorrowBuilder struct {
	ID           uuid.UUID
	BookCardID   string
	BookTitle    string
	ClientCardID string
	ClientName   string
	BorrowedAt   time.Time
	DueDate      time.Time
	ReturnedAt   *time.Time
}

func NewBorrowBuilder() *BorrowBuilder {
	now := time.Now().Truncate(time.Second)
	return &BorrowBuilder{
		ID:           uuid.New(),
		BookCardID:   "04d4e5f6",
		BookTitle:    "The Go Programming Language",
		ClientCardID: "04a1b2c3",
		ClientName:   "Ada Lovelace",
		BorrowedAt:   now,
		DueDate:      now.AddDate(0, 0, 21),
	}
}

func (b *BorrowBuilder) With(mutate func(*BorrowBuilder)) *BorrowBuilder {
	mutate(b)
	return b
}

func (b *BorrowBuilder) BuildView() *queries.BorrowView {
	return &queries.BorrowView{
		ID:           b.ID,
		BookCardID:   b.BookCardID,
		BookTitle:    b.BookTitle,
		ClientCardID: b.ClientCardID,
		ClientName:   b.ClientName,
		BorrowedAt:   b.BorrowedAt,
		DueDate:      b.DueDate,
		ReturnedAt:   b.ReturnedAt,
	}
}
