package api

import (
	"net/http"

	reqdto "shelfscan/internal/handler/dto/request"
	resdto "shelfscan/internal/handler/dto/response"
	"shelfscan/internal/handler/httperr"
	"shelfscan/internal/rfid"
	"shelfscan/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// RfidHandler exposes the scan-driven flows. Scans block until the
// reader answers, the timeout fires or the request is cancelled, so
// every response here carries a scan outcome.
type RfidHandler struct {
	flows commands.ScanUseCase
}

func NewRfidHandler(flows commands.ScanUseCase) *RfidHandler {
	return &RfidHandler{flows: flows}
}

func outcomeHTTPStatus(out rfid.Outcome) int {
	switch out.Status {
	case rfid.StatusRejected:
		return http.StatusConflict
	case rfid.StatusTimeout:
		return http.StatusRequestTimeout
	default:
		// ok and cancelled both report 200; the body tells them apart.
		return http.StatusOK
	}
}

func (h *RfidHandler) RegisterClient(c *gin.Context) {
	var req reqdto.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.flows.RegisterClient(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Register client failed")
		return
	}
	resp := resdto.RegisterClientResponse{ScanOutcomeResponse: *resdto.FromOutcome(result.Outcome)}
	if result.Client != nil {
		resp.Client = resdto.FromClientDetail(result.Client)
	}
	c.JSON(outcomeHTTPStatus(result.Outcome), resp)
}

func (h *RfidHandler) RegisterBook(c *gin.Context) {
	var req reqdto.RegisterBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.flows.RegisterBook(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Register book failed")
		return
	}
	resp := resdto.RegisterBookResponse{ScanOutcomeResponse: *resdto.FromOutcome(result.Outcome)}
	if result.Book != nil {
		resp.Book = resdto.FromBookView(result.Book)
	}
	c.JSON(outcomeHTTPStatus(result.Outcome), resp)
}

// Scan answers with the uid of the next card presented to the reader.
func (h *RfidHandler) Scan(c *gin.Context) {
	out := h.flows.ScanCard(c.Request.Context())
	c.JSON(outcomeHTTPStatus(out), resdto.FromOutcome(out))
}

// RegisterRequest runs the register-scan handshake for a UI that waits
// on the websocket instead of this response: the outcome is broadcast
// as well as returned.
func (h *RfidHandler) RegisterRequest(c *gin.Context) {
	out := h.flows.RequestRegisterScan(c.Request.Context())
	c.JSON(outcomeHTTPStatus(out), resdto.FromOutcome(out))
}

func (h *RfidHandler) RegisterBookRequest(c *gin.Context) {
	out := h.flows.RequestRegisterBookScan(c.Request.Context())
	c.JSON(outcomeHTTPStatus(out), resdto.FromOutcome(out))
}

func (h *RfidHandler) Return(c *gin.Context) {
	result, err := h.flows.ReturnByScan(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Return by scan failed")
		return
	}
	resp := resdto.ReturnByScanResponse{ClientScan: resdto.FromOutcome(result.ClientOutcome)}
	status := outcomeHTTPStatus(result.ClientOutcome)
	if result.BookOutcome != nil {
		resp.BookScan = resdto.FromOutcome(*result.BookOutcome)
		status = outcomeHTTPStatus(*result.BookOutcome)
	}
	if result.Borrow != nil {
		resp.Borrow = resdto.FromBorrowView(result.Borrow)
	}
	c.JSON(status, resp)
}

func (h *RfidHandler) CancelScan(c *gin.Context) {
	h.flows.CancelScan()
	c.JSON(http.StatusOK, gin.H{"status": string(rfid.StatusCancelled)})
}
