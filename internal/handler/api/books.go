package api

import (
	"net/http"

	reqdto "shelfscan/internal/handler/dto/request"
	resdto "shelfscan/internal/handler/dto/response"
	"shelfscan/internal/handler/httperr"
	"shelfscan/internal/usecase/commands"
	"shelfscan/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	cmds commands.BookUseCase
	q    queries.LibraryReader
}

func NewBookHandler(cmds commands.BookUseCase, q queries.LibraryReader) *BookHandler {
	return &BookHandler{cmds: cmds, q: q}
}

func (h *BookHandler) List(c *gin.Context) {
	views, err := h.q.ListBooks(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list books", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookList(views))
}

func (h *BookHandler) Get(c *gin.Context) {
	view, err := h.q.GetBook(c.Request.Context(), c.Param("cardUid"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

func (h *BookHandler) Update(c *gin.Context) {
	var req reqdto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), c.Param("cardUid"), req.ToParams())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Update book failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("cardUid")); err != nil {
		httperr.AbortWithDomainError(c, err, "Delete book failed")
		return
	}
	c.Status(http.StatusNoContent)
}
