package readstore

import (
	"context"

	"shelfscan/internal/infra"
	"shelfscan/internal/rfid"
	"shelfscan/internal/usecase/queries"
)

// DirectoryAdapter exposes the card directory read contract the scan
// subsystem consumes. Unknown uids come back as nil, not as errors: the
// scan policy decides what an unregistered card means.
type DirectoryAdapter struct {
	cards   queries.CardReadStore
	clients queries.ClientReadStore
	books   queries.BookReadStore
	borrows queries.BorrowReadStore
}

func NewDirectoryAdapter(cards queries.CardReadStore, clients queries.ClientReadStore, books queries.BookReadStore, borrows queries.BorrowReadStore) *DirectoryAdapter {
	return &DirectoryAdapter{
		cards:   cards,
		clients: clients,
		books:   books,
		borrows: borrows,
	}
}

func (d *DirectoryAdapter) FindCardByUID(ctx context.Context, uid string) (*rfid.Card, error) {
	v, err := d.cards.FindByUID(ctx, uid)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rfid.Card{UID: v.UID, CreatedAt: v.CreatedAt}, nil
}

func (d *DirectoryAdapter) FindClientByUID(ctx context.Context, uid string) (*rfid.Client, error) {
	v, err := d.clients.FindByCardUID(ctx, uid)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rfid.Client{CardID: v.CardID, Name: v.Name, Email: v.Email}, nil
}

func (d *DirectoryAdapter) FindBookByUID(ctx context.Context, uid string) (*rfid.Book, error) {
	v, err := d.books.FindByCardUID(ctx, uid)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rfid.Book{CardID: v.CardID, Title: v.Title, Author: v.Author}, nil
}

func (d *DirectoryAdapter) FindActiveBorrowsForClient(ctx context.Context, clientCardID string) ([]rfid.Borrow, error) {
	views, err := d.borrows.FindActiveByClientCardID(ctx, clientCardID)
	if err != nil {
		return nil, err
	}

	borrows := make([]rfid.Borrow, len(views))
	for i, v := range views {
		borrows[i] = rfid.Borrow{
			ID:           v.ID,
			BookCardID:   v.BookCardID,
			ClientCardID: v.ClientCardID,
			BorrowedAt:   v.BorrowedAt,
			DueDate:      v.DueDate,
			ReturnedAt:   v.ReturnedAt,
		}
	}
	return borrows, nil
}
