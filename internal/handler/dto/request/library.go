package request

import (
	"shelfscan/internal/usecase/commands"
)

type CreateCardRequest struct {
	UID string `json:"uid" binding:"required,max=64"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (r *UpdateClientRequest) ToParams() commands.UpdateClientParams {
	return commands.UpdateClientParams{Name: r.Name, Email: r.Email}
}

type UpdateBookRequest struct {
	Title  *string `json:"title" binding:"omitempty,min=1,max=300"`
	Author *string `json:"author" binding:"omitempty,min=1,max=100"`
}

func (r *UpdateBookRequest) ToParams() commands.UpdateBookParams {
	return commands.UpdateBookParams{Title: r.Title, Author: r.Author}
}

type CreateBorrowRequest struct {
	BookCardID   string `json:"bookCardId" binding:"required"`
	ClientCardID string `json:"clientCardId" binding:"required"`
}
