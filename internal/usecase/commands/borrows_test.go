//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shelfscan/internal/pkg/clock"
	"shelfscan/internal/pkg/errs"
	"shelfscan/internal/usecase/commands"
	"shelfscan/tests/common/builder"
	commandsmock "shelfscan/tests/mock/commands"
	queriesmock "shelfscan/tests/mock/queries"
)

type BorrowCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	borrows    *commandsmock.MockBorrowRepository
	borrowRead *queriesmock.MockBorrowReadStore
	clientRead *queriesmock.MockClientReadStore
	bookRead   *queriesmock.MockBookReadStore
	clk        *clock.MockClock
	cmds       *commands.BorrowCommands
}

func (s *BorrowCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.borrows = commandsmock.NewMockBorrowRepository(s.ctrl)
	s.borrowRead = queriesmock.NewMockBorrowReadStore(s.ctrl)
	s.clientRead = queriesmock.NewMockClientReadStore(s.ctrl)
	s.bookRead = queriesmock.NewMockBookReadStore(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.cmds = commands.NewBorrowCommands(s.borrows, s.borrowRead, s.clientRead, s.bookRead, s.clk)
}

func (s *BorrowCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBorrowCommandsSuite(t *testing.T) {
	suite.Run(t, new(BorrowCommandsTestSuite))
}

func (s *BorrowCommandsTestSuite) TestBorrowCreatesAndReloads() {
	bookUID := "04d4e5f6"
	clientUID := "04a1b2c3"
	view := builder.NewBorrowBuilder().BuildView()

	s.bookRead.EXPECT().FindByCardUID(gomock.Any(), bookUID).Return(builder.NewBookBuilder().BuildView(), nil)
	s.clientRead.EXPECT().FindByCardUID(gomock.Any(), clientUID).Return(builder.NewClientBuilder().BuildDetailView(), nil)
	s.borrowRead.EXPECT().FindActiveByBookCardID(gomock.Any(), bookUID).Return(nil, notFoundErr())
	s.borrows.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.borrowRead.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(view, nil)

	got, err := s.cmds.Borrow(context.Background(), bookUID, clientUID)

	s.Require().NoError(err)
	if diff := cmp.Diff(view, got); diff != "" {
		s.Failf("borrow view mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *BorrowCommandsTestSuite) TestBorrowRejectsBookAlreadyOut() {
	bookUID := "04d4e5f6"
	clientUID := "04a1b2c3"
	active := builder.NewBorrowBuilder().BuildView()

	s.bookRead.EXPECT().FindByCardUID(gomock.Any(), bookUID).Return(builder.NewBookBuilder().BuildView(), nil)
	s.clientRead.EXPECT().FindByCardUID(gomock.Any(), clientUID).Return(builder.NewClientBuilder().BuildDetailView(), nil)
	s.borrowRead.EXPECT().FindActiveByBookCardID(gomock.Any(), bookUID).Return(active, nil)

	_, err := s.cmds.Borrow(context.Background(), bookUID, clientUID)

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrBookBorrowed)
}

func (s *BorrowCommandsTestSuite) TestBorrowRejectsUnknownBook() {
	s.bookRead.EXPECT().FindByCardUID(gomock.Any(), "ghost").Return(nil, notFoundErr())

	_, err := s.cmds.Borrow(context.Background(), "ghost", "04a1b2c3")

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrBookNotFound)
}

func (s *BorrowCommandsTestSuite) TestBorrowRejectsUnknownClient() {
	s.bookRead.EXPECT().FindByCardUID(gomock.Any(), "04d4e5f6").Return(builder.NewBookBuilder().BuildView(), nil)
	s.clientRead.EXPECT().FindByCardUID(gomock.Any(), "ghost").Return(nil, notFoundErr())

	_, err := s.cmds.Borrow(context.Background(), "04d4e5f6", "ghost")

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrClientNotFound)
}

func (s *BorrowCommandsTestSuite) TestReturnClosesActiveBorrow() {
	active := builder.NewBorrowBuilder().BuildView()
	returnedAt := s.clk.Now()
	returned := *active
	returned.ReturnedAt = &returnedAt

	first := s.borrowRead.EXPECT().FindByID(gomock.Any(), active.ID).Return(active, nil)
	s.borrows.EXPECT().MarkReturned(gomock.Any(), active.ID, returnedAt).Return(nil)
	second := s.borrowRead.EXPECT().FindByID(gomock.Any(), active.ID).Return(&returned, nil)
	gomock.InOrder(first, second)

	got, err := s.cmds.Return(context.Background(), active.ID)

	s.Require().NoError(err)
	s.Require().NotNil(got.ReturnedAt)
	s.Equal(returnedAt, *got.ReturnedAt)
}

func (s *BorrowCommandsTestSuite) TestReturnTwiceFails() {
	returnedAt := s.clk.Now().Add(-time.Hour)
	view := builder.NewBorrowBuilder().With(func(b *builder.BorrowBuilder) {
		b.ReturnedAt = &returnedAt
	}).BuildView()

	s.borrowRead.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

	_, err := s.cmds.Return(context.Background(), view.ID)

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrAlreadyReturned)
}

func (s *BorrowCommandsTestSuite) TestReturnUnknownBorrowFails() {
	id := uuid.New()
	s.borrowRead.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

	_, err := s.cmds.Return(context.Background(), id)

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrBorrowNotFound)
}

func (s *BorrowCommandsTestSuite) TestReturnLostRaceMapsToAlreadyReturned() {
	active := builder.NewBorrowBuilder().BuildView()

	s.borrowRead.EXPECT().FindByID(gomock.Any(), active.ID).Return(active, nil)
	s.borrows.EXPECT().MarkReturned(gomock.Any(), active.ID, s.clk.Now()).Return(notFoundErr())

	_, err := s.cmds.Return(context.Background(), active.ID)

	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrAlreadyReturned)
}
