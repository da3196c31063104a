package response

import (
	"time"

	"shelfscan/internal/usecase/queries"
)

type CardResponse struct {
	UID       string    `json:"uid"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromCardView(v *queries.CardView) *CardResponse {
	return &CardResponse{UID: v.UID, CreatedAt: v.CreatedAt}
}

func FromCardList(items []queries.CardView) []*CardResponse {
	res := make([]*CardResponse, len(items))
	for i := range items {
		res[i] = FromCardView(&items[i])
	}
	return res
}

type ClientResponse struct {
	CardID  string            `json:"cardId"`
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Borrows []*BorrowResponse `json:"borrows"`
}

func FromClientDetail(v *queries.ClientDetailView) *ClientResponse {
	return &ClientResponse{
		CardID:  v.CardID,
		Name:    v.Name,
		Email:   v.Email,
		Borrows: FromBorrowList(v.Borrows),
	}
}

func FromClientList(items []queries.ClientDetailView) []*ClientResponse {
	res := make([]*ClientResponse, len(items))
	for i := range items {
		res[i] = FromClientDetail(&items[i])
	}
	return res
}

type BookResponse struct {
	CardID string `json:"cardId"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	return &BookResponse{CardID: v.CardID, Title: v.Title, Author: v.Author}
}

func FromBookList(items []queries.BookView) []*BookResponse {
	res := make([]*BookResponse, len(items))
	for i := range items {
		res[i] = FromBookView(&items[i])
	}
	return res
}

type BorrowResponse struct {
	ID           string     `json:"id"`
	BookCardID   string     `json:"bookCardId"`
	BookTitle    string     `json:"bookTitle"`
	ClientCardID string     `json:"clientCardId"`
	ClientName   string     `json:"clientName"`
	BorrowedAt   time.Time  `json:"borrowedAt"`
	DueDate      time.Time  `json:"dueDate"`
	ReturnedAt   *time.Time `json:"returnedAt"`
}

func FromBorrowView(v *queries.BorrowView) *BorrowResponse {
	return &BorrowResponse{
		ID:           v.ID.String(),
		BookCardID:   v.BookCardID,
		BookTitle:    v.BookTitle,
		ClientCardID: v.ClientCardID,
		ClientName:   v.ClientName,
		BorrowedAt:   v.BorrowedAt,
		DueDate:      v.DueDate,
		ReturnedAt:   v.ReturnedAt,
	}
}

func FromBorrowList(items []queries.BorrowView) []*BorrowResponse {
	res := make([]*BorrowResponse, len(items))
	for i := range items {
		res[i] = FromBorrowView(&items[i])
	}
	return res
}
