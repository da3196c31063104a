package api

import (
	"net/http"

	reqdto "shelfscan/internal/handler/dto/request"
	resdto "shelfscan/internal/handler/dto/response"
	"shelfscan/internal/handler/httperr"
	"shelfscan/internal/usecase/commands"
	"shelfscan/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BorrowHandler struct {
	cmds commands.BorrowUseCase
	q    queries.LibraryReader
}

func NewBorrowHandler(cmds commands.BorrowUseCase, q queries.LibraryReader) *BorrowHandler {
	return &BorrowHandler{cmds: cmds, q: q}
}

func (h *BorrowHandler) Create(c *gin.Context) {
	var req reqdto.CreateBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Borrow(c.Request.Context(), req.BookCardID, req.ClientCardID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Borrow failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBorrowView(view))
}

func (h *BorrowHandler) List(c *gin.Context) {
	views, err := h.q.ListBorrows(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list borrows", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowList(views))
}

func (h *BorrowHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetBorrow(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Borrow not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowView(view))
}

func (h *BorrowHandler) Return(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.cmds.Return(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Return failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowView(view))
}

func (h *BorrowHandler) ListByClient(c *gin.Context) {
	views, err := h.q.BorrowsForClient(c.Request.Context(), c.Param("cardUid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list borrows", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowList(views))
}

func (h *BorrowHandler) ListByBook(c *gin.Context) {
	views, err := h.q.BorrowsForBook(c.Request.Context(), c.Param("cardUid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list borrows", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowList(views))
}
