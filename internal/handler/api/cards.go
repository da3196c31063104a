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

type CardHandler struct {
	cmds commands.CardUseCase
	q    queries.LibraryReader
}

func NewCardHandler(cmds commands.CardUseCase, q queries.LibraryReader) *CardHandler {
	return &CardHandler{cmds: cmds, q: q}
}

func (h *CardHandler) List(c *gin.Context) {
	views, err := h.q.ListCards(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list cards", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardList(views))
}

func (h *CardHandler) Get(c *gin.Context) {
	view, err := h.q.GetCard(c.Request.Context(), c.Param("uid"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Card not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardView(view))
}

func (h *CardHandler) Create(c *gin.Context) {
	var req reqdto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Create(c.Request.Context(), req.UID); err != nil {
		httperr.AbortWithDomainError(c, err, "Create card failed")
		return
	}
	view, err := h.q.GetCard(c.Request.Context(), req.UID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load card", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCardView(view))
}

func (h *CardHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("uid")); err != nil {
		httperr.AbortWithDomainError(c, err, "Delete card failed")
		return
	}
	c.Status(http.StatusNoContent)
}
