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

type ClientHandler struct {
	cmds commands.ClientUseCase
	q    queries.LibraryReader
}

func NewClientHandler(cmds commands.ClientUseCase, q queries.LibraryReader) *ClientHandler {
	return &ClientHandler{cmds: cmds, q: q}
}

func (h *ClientHandler) List(c *gin.Context) {
	views, err := h.q.ListClients(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list clients", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientList(views))
}

func (h *ClientHandler) Get(c *gin.Context) {
	view, err := h.q.GetClient(c.Request.Context(), c.Param("cardUid"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Client not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientDetail(view))
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req reqdto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), c.Param("cardUid"), req.ToParams())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Update client failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientDetail(view))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("cardUid")); err != nil {
		httperr.AbortWithDomainError(c, err, "Delete client failed")
		return
	}
	c.Status(http.StatusNoContent)
}
