//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"shelfscan/internal/handler/api"
	"shelfscan/internal/pkg/errs"
	"shelfscan/internal/rfid"
	"shelfscan/internal/usecase/commands"
	"shelfscan/tests/common/builder"
	"shelfscan/tests/common/httptest"
	"shelfscan/tests/common/testutil"
	commandsmock "shelfscan/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RfidHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockFlows *commandsmock.MockScanUseCase
	handler   *api.RfidHandler
}

func (s *RfidHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockFlows = commandsmock.NewMockScanUseCase(s.mockCtrl)
	s.handler = api.NewRfidHandler(s.mockFlows)

	s.router.POST("/rfid/register-client", s.handler.RegisterClient)
	s.router.POST("/rfid/register-book", s.handler.RegisterBook)
	s.router.POST("/rfid/scan-client", s.handler.Scan)
	s.router.POST("/rfid/scan-book", s.handler.Scan)
	s.router.POST("/rfid/register-request", s.handler.RegisterRequest)
	s.router.POST("/rfid/register-book-request", s.handler.RegisterBookRequest)
	s.router.POST("/rfid/return", s.handler.Return)
	s.router.POST("/rfid/cancel-scan", s.handler.CancelScan)
}

func (s *RfidHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRfidHandlerSuite(t *testing.T) {
	suite.Run(t, new(RfidHandlerTestSuite))
}

func (s *RfidHandlerTestSuite) TestRegisterClient() {
	url := "/rfid/register-client"
	reqBody := builder.NewClientBuilder().BuildRegisterRequestDTO()

	s.Run("success: 200 with outcome and created client", func() {
		result := &commands.RegisterClientResult{
			Outcome: rfid.OK("04a1b2c3"),
			Client:  builder.NewClientBuilder().BuildDetailView(),
		}
		s.mockFlows.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		body := httptest.AssertScanOutcome(s.T(), rec, http.StatusOK, "ok", "04a1b2c3", "")
		s.NotNil(body["client"])
	})

	s.Run("rejection: 409 with reason, no client in body", func() {
		result := &commands.RegisterClientResult{Outcome: rfid.Rejected("04a1b2c3", "busy")}
		s.mockFlows.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		body := httptest.AssertScanOutcome(s.T(), rec, http.StatusConflict, "rejected", "04a1b2c3", "busy")
		s.NotContains(body, "client")
	})

	s.Run("timeout: 408 without uid", func() {
		result := &commands.RegisterClientResult{Outcome: rfid.Timeout()}
		s.mockFlows.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertScanOutcome(s.T(), rec, http.StatusRequestTimeout, "timeout", "", "")
	})

	s.Run("cancelled: 200 with cancelled status", func() {
		result := &commands.RegisterClientResult{Outcome: rfid.Cancelled()}
		s.mockFlows.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertScanOutcome(s.T(), rec, http.StatusOK, "cancelled", "", "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "name exceeds maximum length", mutate: testutil.Field("name", strings.Repeat("a", 101))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 when the card is already assigned", func() {
		s.mockFlows.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).Return(nil, errs.ErrCardInUse)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Register client failed")
	})
}

func (s *RfidHandlerTestSuite) TestRegisterBook() {
	url := "/rfid/register-book"
	reqBody := builder.NewBookBuilder().BuildRegisterRequestDTO()

	s.Run("success: 200 with outcome and created book", func() {
		result := &commands.RegisterBookResult{
			Outcome: rfid.OK("04d4e5f6"),
			Book:    builder.NewBookBuilder().BuildView(),
		}
		s.mockFlows.EXPECT().RegisterBook(gomock.Any(), gomock.Any()).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		body := httptest.AssertScanOutcome(s.T(), rec, http.StatusOK, "ok", "04d4e5f6", "")
		s.NotNil(body["book"])
	})

	s.Run("error: 400 on missing title", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("title", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RfidHandlerTestSuite) TestScan() {
	s.Run("success: 200 with the scanned uid", func() {
		s.mockFlows.EXPECT().ScanCard(gomock.Any()).Return(rfid.OK("04ffff"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rfid/scan-client", nil)

		httptest.AssertScanOutcome(s.T(), rec, http.StatusOK, "ok", "04ffff", "")
	})

	s.Run("timeout: 408", func() {
		s.mockFlows.EXPECT().ScanCard(gomock.Any()).Return(rfid.Timeout())
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rfid/scan-book", nil)

		s.Equal(http.StatusRequestTimeout, rec.Code)
	})
}

func (s *RfidHandlerTestSuite) TestRegisterRequest() {
	s.mockFlows.EXPECT().RequestRegisterScan(gomock.Any()).Return(rfid.OK("04a1b2c3"))
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rfid/register-request", nil)

	httptest.AssertScanOutcome(s.T(), rec, http.StatusOK, "ok", "04a1b2c3", "")
}

func (s *RfidHandlerTestSuite) TestRegisterBookRequest() {
	s.mockFlows.EXPECT().RequestRegisterBookScan(gomock.Any()).Return(rfid.Rejected("04d4e5f6", "busy"))
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rfid/register-book-request", nil)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RfidHandlerTestSuite) TestReturn() {
	url := "/rfid/return"

	s.Run("success: 200 with both scans and the closed borrow", func() {
		bookOut := rfid.OK("04d4e5f6")
		result := &commands.ReturnByScanResult{
			ClientOutcome: rfid.OK("04a1b2c3"),
			BookOutcome:   &bookOut,
			Borrow:        builder.NewBorrowBuilder().BuildView(),
		}
		s.mockFlows.EXPECT().ReturnByScan(gomock.Any()).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body["clientScan"])
		s.NotNil(body["bookScan"])
		s.NotNil(body["borrow"])
	})

	s.Run("client scan rejected: 409, no book scan", func() {
		result := &commands.ReturnByScanResult{
			ClientOutcome: rfid.Rejected("ghost", "unknown-client"),
		}
		s.mockFlows.EXPECT().ReturnByScan(gomock.Any()).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		s.Equal(http.StatusConflict, rec.Code)
		var body map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.NotContains(body, "bookScan")
		s.NotContains(body, "borrow")
	})

	s.Run("book scan rejected: status follows the book outcome", func() {
		bookOut := rfid.Rejected("04d4e5f6", "wrong-client")
		result := &commands.ReturnByScanResult{
			ClientOutcome: rfid.OK("04a1b2c3"),
			BookOutcome:   &bookOut,
		}
		s.mockFlows.EXPECT().ReturnByScan(gomock.Any()).Return(result, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 409 when the borrow was already closed", func() {
		s.mockFlows.EXPECT().ReturnByScan(gomock.Any()).Return(nil, errs.ErrAlreadyReturned)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Return by scan failed")
	})
}

func (s *RfidHandlerTestSuite) TestCancelScan() {
	s.mockFlows.EXPECT().CancelScan()
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rfid/cancel-scan", nil)

	var body map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("cancelled", body["status"])
}
