package request

import (
	"shelfscan/internal/usecase/commands"
)

type RegisterClientRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email"`
}

func (r *RegisterClientRequest) ToParams() commands.RegisterClientParams {
	return commands.RegisterClientParams{Name: r.Name, Email: r.Email}
}

type RegisterBookRequest struct {
	Title  string `json:"title" binding:"required,min=1,max=300"`
	Author string `json:"author" binding:"required,min=1,max=100"`
}

func (r *RegisterBookRequest) ToParams() commands.RegisterBookParams {
	return commands.RegisterBookParams{Title: r.Title, Author: r.Author}
}
