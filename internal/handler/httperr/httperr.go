package httperr

import (
	"errors"
	"net/http"

	"shelfscan/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps domain sentinels to HTTP statuses so every
// handler shares one translation table.
func AbortWithDomainError(c *gin.Context, err error, msg string) {
	AbortWithError(c, statusOf(err), err, msg, nil)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrCardNotFound),
		errors.Is(err, errs.ErrClientNotFound),
		errors.Is(err, errs.ErrBookNotFound),
		errors.Is(err, errs.ErrBorrowNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrCardAlreadyExists),
		errors.Is(err, errs.ErrCardInUse),
		errors.Is(err, errs.ErrBookBorrowed),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrNoActiveBorrow):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
