//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shelfscan/internal/infra"
	"shelfscan/internal/pkg/clock"
	"shelfscan/internal/pkg/errs"
	"shelfscan/internal/rfid"
	"shelfscan/internal/usecase/commands"
	"shelfscan/tests/common/builder"
	commandsmock "shelfscan/tests/mock/commands"
	queriesmock "shelfscan/tests/mock/queries"
)

type ScanFlowsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	scanner    *commandsmock.MockScanner
	notifier   *commandsmock.MockNotifier
	cards      *commandsmock.MockCardRepository
	clients    *commandsmock.MockClientRepository
	books      *commandsmock.MockBookRepository
	borrows    *commandsmock.MockBorrowRepository
	clientRead *queriesmock.MockClientReadStore
	bookRead   *queriesmock.MockBookReadStore
	borrowRead *queriesmock.MockBorrowReadStore
	clk        *clock.MockClock
	flows      *commands.ScanFlows
}

func (s *ScanFlowsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.scanner = commandsmock.NewMockScanner(s.ctrl)
	s.notifier = commandsmock.NewMockNotifier(s.ctrl)
	s.cards = commandsmock.NewMockCardRepository(s.ctrl)
	s.clients = commandsmock.NewMockClientRepository(s.ctrl)
	s.books = commandsmock.NewMockBookRepository(s.ctrl)
	s.borrows = commandsmock.NewMockBorrowRepository(s.ctrl)
	s.clientRead = queriesmock.NewMockClientReadStore(s.ctrl)
	s.bookRead = queriesmock.NewMockBookReadStore(s.ctrl)
	s.borrowRead = queriesmock.NewMockBorrowReadStore(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.flows = commands.NewScanFlows(
		s.scanner, s.notifier,
		s.cards, s.clients, s.books, s.borrows,
		s.clientRead, s.bookRead, s.borrowRead,
		s.clk, slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *ScanFlowsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestScanFlowsSuite(t *testing.T) {
	suite.Run(t, new(ScanFlowsTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", errors.New("no rows"), infra.KindNotFound)
}

func duplicateErr() error {
	return infra.WrapRepoErr("duplicate key", errors.New("23505"), infra.KindDuplicateKey)
}

// scanWithCard makes the scanner behave like the real correlator: the
// flow's policy runs against the given card and decides the outcome.
func (s *ScanFlowsTestSuite) scanWithCard(uid string, card *rfid.Card) *gomock.Call {
	return s.scanner.EXPECT().Scan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, policy rfid.Policy, _ ...rfid.ScanOption) rfid.Outcome {
			d := policy(ctx, uid, card)
			if !d.OK {
				return rfid.Rejected(uid, d.Reason)
			}
			return rfid.OK(uid)
		})
}

func (s *ScanFlowsTestSuite) TestRegisterClientCreatesUnderScannedUID() {
	uid := "04a1b2c3"
	view := builder.NewClientBuilder().BuildDetailView()

	// Unknown card: the policy accepts and the card row is auto-created.
	s.scanWithCard(uid, nil)
	s.cards.EXPECT().CreateIfMissing(gomock.Any(), gomock.Any()).Return(nil)
	s.clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.clientRead.EXPECT().FindByCardUID(gomock.Any(), uid).Return(view, nil)

	result, err := s.flows.RegisterClient(context.Background(), commands.RegisterClientParams{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})

	s.Require().NoError(err)
	s.Equal(rfid.StatusOK, result.Outcome.Status)
	s.Equal(uid, result.Outcome.UID)
	s.Equal(view, result.Client)
}

func (s *ScanFlowsTestSuite) TestRegisterClientRejectsInvalidEmailBeforeScanning() {
	_, err := s.flows.RegisterClient(context.Background(), commands.RegisterClientParams{
		Name:  "Ada",
		Email: "not-an-email",
	})

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrDomainValidation)
}

func (s *ScanFlowsTestSuite) TestRegisterClientBusyCardIsAnOutcomeNotAnError() {
	uid := "04a1b2c3"
	existing := builder.NewClientBuilder().BuildDetailView()

	s.scanWithCard(uid, &rfid.Card{UID: uid})
	s.clientRead.EXPECT().FindByCardUID(gomock.Any(), uid).Return(existing, nil)

	result, err := s.flows.RegisterClient(context.Background(), commands.RegisterClientParams{
		Name:  "Ada",
		Email: "ada@example.com",
	})

	s.Require().NoError(err)
	s.Equal(rfid.StatusRejected, result.Outcome.Status)
	s.Equal(commands.ReasonBusy, result.Outcome.Reason)
	s.Nil(result.Client)
}

func (s *ScanFlowsTestSuite) TestRegisterClientTimeoutPassesThrough() {
	s.scanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(rfid.Timeout())

	result, err := s.flows.RegisterClient(context.Background(), commands.RegisterClientParams{
		Name:  "Ada",
		Email: "ada@example.com",
	})

	s.Require().NoError(err)
	s.Equal(rfid.StatusTimeout, result.Outcome.Status)
	s.Nil(result.Client)
}

func (s *ScanFlowsTestSuite) TestRegisterClientDuplicateMapsToCardInUse() {
	uid := "04a1b2c3"

	s.scanWithCard(uid, nil)
	s.cards.EXPECT().CreateIfMissing(gomock.Any(), gomock.Any()).Return(nil)
	s.clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateErr())

	_, err := s.flows.RegisterClient(context.Background(), commands.RegisterClientParams{
		Name:  "Ada",
		Email: "ada@example.com",
	})

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrCardInUse)
}

func (s *ScanFlowsTestSuite) TestRegisterBookCreatesUnderScannedUID() {
	uid := "04d4e5f6"
	view := builder.NewBookBuilder().BuildView()

	s.scanWithCard(uid, nil)
	s.cards.EXPECT().CreateIfMissing(gomock.Any(), gomock.Any()).Return(nil)
	s.books.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.bookRead.EXPECT().FindByCardUID(gomock.Any(), uid).Return(view, nil)

	result, err := s.flows.RegisterBook(context.Background(), commands.RegisterBookParams{
		Title:  "SICP",
		Author: "Abelson",
	})

	s.Require().NoError(err)
	s.Equal(rfid.StatusOK, result.Outcome.Status)
	s.Equal(view, result.Book)
}

func (s *ScanFlowsTestSuite) TestScanCardAcceptsAnyCard() {
	uid := "04ffff"
	s.scanWithCard(uid, nil)

	out := s.flows.ScanCard(context.Background())

	s.Equal(rfid.StatusOK, out.Status)
	s.Equal(uid, out.UID)
}

func (s *ScanFlowsTestSuite) TestRequestRegisterScanBroadcastsOutcome() {
	out := rfid.Rejected("04a1b2c3", commands.ReasonBusy)
	s.scanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(out)
	s.notifier.EXPECT().Broadcast(rfid.EventRegisterResult, out)

	got := s.flows.RequestRegisterScan(context.Background())

	s.Equal(out, got)
}

func (s *ScanFlowsTestSuite) TestRequestRegisterBookScanBroadcastsOutcome() {
	out := rfid.OK("04d4e5f6")
	s.scanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(out)
	s.notifier.EXPECT().Broadcast(rfid.EventRegisterBookResult, out)

	got := s.flows.RequestRegisterBookScan(context.Background())

	s.Equal(out, got)
}

func (s *ScanFlowsTestSuite) TestReturnByScanMarksActiveBorrowReturned() {
	clientUID := "04a1b2c3"
	bookUID := "04d4e5f6"

	active := builder.NewBorrowBuilder().BuildView()
	active.ClientCardID = clientUID
	active.BookCardID = bookUID

	returnedAt := s.clk.Now()
	returned := *active
	returned.ReturnedAt = &returnedAt

	clientView := builder.NewClientBuilder().BuildDetailView()
	bookView := builder.NewBookBuilder().BuildView()

	first := s.scanWithCard(clientUID, &rfid.Card{UID: clientUID})
	second := s.scanWithCard(bookUID, &rfid.Card{UID: bookUID})
	gomock.InOrder(first, second)

	s.clientRead.EXPECT().FindByCardUID(gomock.Any(), clientUID).Return(clientView, nil)
	s.bookRead.EXPECT().FindByCardUID(gomock.Any(), bookUID).Return(bookView, nil)
	s.borrowRead.EXPECT().FindActiveByBookCardID(gomock.Any(), bookUID).Return(active, nil)
	s.borrows.EXPECT().MarkReturned(gomock.Any(), active.ID, returnedAt).Return(nil)
	s.borrowRead.EXPECT().FindByID(gomock.Any(), active.ID).Return(&returned, nil)

	result, err := s.flows.ReturnByScan(context.Background())

	s.Require().NoError(err)
	s.Equal(rfid.StatusOK, result.ClientOutcome.Status)
	s.Require().NotNil(result.BookOutcome)
	s.Equal(rfid.StatusOK, result.BookOutcome.Status)
	s.Require().NotNil(result.Borrow)
	s.NotNil(result.Borrow.ReturnedAt)
}

func (s *ScanFlowsTestSuite) TestReturnByScanUnknownClientStopsBeforeBookScan() {
	s.scanWithCard("ghost", nil)

	result, err := s.flows.ReturnByScan(context.Background())

	s.Require().NoError(err)
	s.Equal(rfid.StatusRejected, result.ClientOutcome.Status)
	s.Equal(commands.ReasonNoClient, result.ClientOutcome.Reason)
	s.Nil(result.BookOutcome)
	s.Nil(result.Borrow)
}

func (s *ScanFlowsTestSuite) TestReturnByScanRejectsBookWithoutActiveBorrow() {
	clientUID := "04a1b2c3"
	bookUID := "04d4e5f6"

	first := s.scanWithCard(clientUID, &rfid.Card{UID: clientUID})
	second := s.scanWithCard(bookUID, &rfid.Card{UID: bookUID})
	gomock.InOrder(first, second)

	s.clientRead.EXPECT().FindByCardUID(gomock.Any(), clientUID).Return(builder.NewClientBuilder().BuildDetailView(), nil)
	s.bookRead.EXPECT().FindByCardUID(gomock.Any(), bookUID).Return(builder.NewBookBuilder().BuildView(), nil)
	s.borrowRead.EXPECT().FindActiveByBookCardID(gomock.Any(), bookUID).Return(nil, notFoundErr())

	result, err := s.flows.ReturnByScan(context.Background())

	s.Require().NoError(err)
	s.Require().NotNil(result.BookOutcome)
	s.Equal(rfid.StatusRejected, result.BookOutcome.Status)
	s.Equal(commands.ReasonNotBorrowed, result.BookOutcome.Reason)
	s.Nil(result.Borrow)
}

func (s *ScanFlowsTestSuite) TestReturnByScanRejectsBookHeldByAnotherClient() {
	clientUID := "04a1b2c3"
	bookUID := "04d4e5f6"

	active := builder.NewBorrowBuilder().BuildView()
	active.ClientCardID = "someone-else"
	active.BookCardID = bookUID

	first := s.scanWithCard(clientUID, &rfid.Card{UID: clientUID})
	second := s.scanWithCard(bookUID, &rfid.Card{UID: bookUID})
	gomock.InOrder(first, second)

	s.clientRead.EXPECT().FindByCardUID(gomock.Any(), clientUID).Return(builder.NewClientBuilder().BuildDetailView(), nil)
	s.bookRead.EXPECT().FindByCardUID(gomock.Any(), bookUID).Return(builder.NewBookBuilder().BuildView(), nil)
	s.borrowRead.EXPECT().FindActiveByBookCardID(gomock.Any(), bookUID).Return(active, nil)

	result, err := s.flows.ReturnByScan(context.Background())

	s.Require().NoError(err)
	s.Require().NotNil(result.BookOutcome)
	s.Equal(rfid.StatusRejected, result.BookOutcome.Status)
	s.Equal(commands.ReasonWrongClient, result.BookOutcome.Reason)
	s.Nil(result.Borrow)
}

func (s *ScanFlowsTestSuite) TestCancelScanDelegatesToScanner() {
	s.scanner.EXPECT().CancelScan()

	s.flows.CancelScan()
}
