package commands

import (
	"context"
	"log/slog"

	"shelfscan/internal/domain/book"
	"shelfscan/internal/domain/card"
	"shelfscan/internal/domain/client"
	"shelfscan/internal/infra"
	"shelfscan/internal/pkg/clock"
	"shelfscan/internal/pkg/errs"
	"shelfscan/internal/rfid"
	"shelfscan/internal/usecase/queries"
)

// Rejection reasons surfaced to callers and the reader display.
const (
	ReasonBusy        = "busy"
	ReasonLookup      = "error"
	ReasonNoClient    = "unknown-client"
	ReasonNoBook      = "unknown-book"
	ReasonNotBorrowed = "not-borrowed"
	ReasonWrongClient = "wrong-client"
)

// ScanFlows drives the correlator with the validation policies each API
// endpoint needs and performs the follow-up writes on acceptance.
type ScanFlows struct {
	scanner    Scanner
	notifier   Notifier
	cards      CardRepository
	clients    ClientRepository
	books      BookRepository
	borrows    BorrowRepository
	clientRead queries.ClientReadStore
	bookRead   queries.BookReadStore
	borrowRead queries.BorrowReadStore
	clock      clock.Clock
	log        *slog.Logger
}

func NewScanFlows(
	scanner Scanner,
	notifier Notifier,
	cards CardRepository,
	clients ClientRepository,
	books BookRepository,
	borrows BorrowRepository,
	clientRead queries.ClientReadStore,
	bookRead queries.BookReadStore,
	borrowRead queries.BorrowReadStore,
	clk clock.Clock,
	log *slog.Logger,
) *ScanFlows {
	return &ScanFlows{
		scanner:    scanner,
		notifier:   notifier,
		cards:      cards,
		clients:    clients,
		books:      books,
		borrows:    borrows,
		clientRead: clientRead,
		bookRead:   bookRead,
		borrowRead: borrowRead,
		clock:      clk,
		log:        log,
	}
}

type RegisterClientParams struct {
	Name  string
	Email string
}

type RegisterClientResult struct {
	Outcome rfid.Outcome
	Client  *queries.ClientDetailView
}

type RegisterBookParams struct {
	Title  string
	Author string
}

type RegisterBookResult struct {
	Outcome rfid.Outcome
	Book    *queries.BookView
}

type ReturnByScanResult struct {
	ClientOutcome rfid.Outcome
	BookOutcome   *rfid.Outcome
	Borrow        *queries.BorrowView
}

// freeCardPolicy accepts a card only if no client is registered under its
// uid; an unknown card is acceptable and will be auto-registered.
func (f *ScanFlows) freeClientCardPolicy(ctx context.Context, uid string, c *rfid.Card) rfid.Decision {
	if c == nil {
		return rfid.Accept()
	}
	_, err := f.clientRead.FindByCardUID(ctx, uid)
	if err == nil {
		return rfid.Reject(ReasonBusy)
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		f.log.Error("client lookup failed during scan", "uid", uid, "error", err)
		return rfid.Reject(ReasonLookup)
	}
	return rfid.Accept()
}

func (f *ScanFlows) freeBookCardPolicy(ctx context.Context, uid string, c *rfid.Card) rfid.Decision {
	if c == nil {
		return rfid.Accept()
	}
	_, err := f.bookRead.FindByCardUID(ctx, uid)
	if err == nil {
		return rfid.Reject(ReasonBusy)
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		f.log.Error("book lookup failed during scan", "uid", uid, "error", err)
		return rfid.Reject(ReasonLookup)
	}
	return rfid.Accept()
}

// RegisterClient waits for a card, then creates the client under the
// scanned uid. A non-ok outcome is a result, not an error.
func (f *ScanFlows) RegisterClient(ctx context.Context, params RegisterClientParams) (*RegisterClientResult, error) {
	email, err := client.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	out := f.scanner.Scan(ctx, f.freeClientCardPolicy)
	if out.Status != rfid.StatusOK {
		return &RegisterClientResult{Outcome: out}, nil
	}

	if err := f.ensureCard(ctx, out.UID); err != nil {
		return nil, err
	}

	entity, err := client.NewClient(out.UID, params.Name, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := f.clients.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrCardInUse)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := f.clientRead.FindByCardUID(ctx, out.UID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &RegisterClientResult{Outcome: out, Client: view}, nil
}

func (f *ScanFlows) RegisterBook(ctx context.Context, params RegisterBookParams) (*RegisterBookResult, error) {
	out := f.scanner.Scan(ctx, f.freeBookCardPolicy)
	if out.Status != rfid.StatusOK {
		return &RegisterBookResult{Outcome: out}, nil
	}

	if err := f.ensureCard(ctx, out.UID); err != nil {
		return nil, err
	}

	entity, err := book.NewBook(out.UID, params.Title, params.Author)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := f.books.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrCardInUse)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := f.bookRead.FindByCardUID(ctx, out.UID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &RegisterBookResult{Outcome: out, Book: view}, nil
}

// ScanCard is the plain flow: wait for any card, hand the uid back.
func (f *ScanFlows) ScanCard(ctx context.Context) rfid.Outcome {
	return f.scanner.Scan(ctx, rfid.AcceptAll)
}

// RequestRegisterScan runs the register-client policy and additionally
// pushes the outcome to UI observers watching the registration dialog.
func (f *ScanFlows) RequestRegisterScan(ctx context.Context) rfid.Outcome {
	out := f.scanner.Scan(ctx, f.freeClientCardPolicy)
	f.notifier.Broadcast(rfid.EventRegisterResult, out)
	return out
}

func (f *ScanFlows) RequestRegisterBookScan(ctx context.Context) rfid.Outcome {
	out := f.scanner.Scan(ctx, f.freeBookCardPolicy)
	f.notifier.Broadcast(rfid.EventRegisterBookResult, out)
	return out
}

// ReturnByScan resolves a return with two sequential scans: first the
// client's card, then the book's. The book policy additionally checks
// that this client is the one holding the book.
func (f *ScanFlows) ReturnByScan(ctx context.Context) (*ReturnByScanResult, error) {
	clientOut := f.scanner.Scan(ctx, func(ctx context.Context, uid string, c *rfid.Card) rfid.Decision {
		if c == nil {
			return rfid.Reject(ReasonNoClient)
		}
		_, err := f.clientRead.FindByCardUID(ctx, uid)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return rfid.Reject(ReasonNoClient)
			}
			f.log.Error("client lookup failed during scan", "uid", uid, "error", err)
			return rfid.Reject(ReasonLookup)
		}
		return rfid.Accept()
	})
	if clientOut.Status != rfid.StatusOK {
		return &ReturnByScanResult{ClientOutcome: clientOut}, nil
	}

	var active *queries.BorrowView
	bookOut := f.scanner.Scan(ctx, func(ctx context.Context, uid string, c *rfid.Card) rfid.Decision {
		if c == nil {
			return rfid.Reject(ReasonNoBook)
		}
		if _, err := f.bookRead.FindByCardUID(ctx, uid); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return rfid.Reject(ReasonNoBook)
			}
			f.log.Error("book lookup failed during scan", "uid", uid, "error", err)
			return rfid.Reject(ReasonLookup)
		}

		borrowView, err := f.borrowRead.FindActiveByBookCardID(ctx, uid)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return rfid.Reject(ReasonNotBorrowed)
			}
			f.log.Error("borrow lookup failed during scan", "uid", uid, "error", err)
			return rfid.Reject(ReasonLookup)
		}
		if borrowView.ClientCardID != clientOut.UID {
			return rfid.Reject(ReasonWrongClient)
		}
		active = borrowView
		return rfid.Accept()
	})
	result := &ReturnByScanResult{ClientOutcome: clientOut, BookOutcome: &bookOut}
	if bookOut.Status != rfid.StatusOK || active == nil {
		return result, nil
	}

	if err := f.borrows.MarkReturned(ctx, active.ID, f.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAlreadyReturned)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := f.borrowRead.FindByID(ctx, active.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	result.Borrow = view
	return result, nil
}

// CancelScan aborts whatever scan is pending. Safe to call at any time.
func (f *ScanFlows) CancelScan() {
	f.scanner.CancelScan()
}

func (f *ScanFlows) ensureCard(ctx context.Context, uid string) error {
	entity, err := card.NewCard(uid, f.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := f.cards.CreateIfMissing(ctx, entity); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
