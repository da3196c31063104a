package commands

import (
	"context"

	"shelfscan/internal/domain/client"
	"shelfscan/internal/infra"
	"shelfscan/internal/pkg/errs"
	"shelfscan/internal/usecase/queries"
)

type UpdateClientParams struct {
	Name  *string
	Email *string
}

type ClientCommands struct {
	clients    ClientRepository
	clientRead queries.ClientReadStore
}

func NewClientCommands(clients ClientRepository, clientRead queries.ClientReadStore) *ClientCommands {
	return &ClientCommands{clients: clients, clientRead: clientRead}
}

func (c *ClientCommands) Update(ctx context.Context, cardUID string, params UpdateClientParams) (*queries.ClientDetailView, error) {
	current, err := c.clientRead.FindByCardUID(ctx, cardUID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrClientNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	name := current.Name
	if params.Name != nil {
		name = *params.Name
	}
	emailStr := current.Email
	if params.Email != nil {
		emailStr = *params.Email
	}

	email, err := client.NewEmail(emailStr)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity, err := client.NewClient(cardUID, name, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.clients.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrClientNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.clientRead.FindByCardUID(ctx, cardUID)
}

func (c *ClientCommands) Delete(ctx context.Context, cardUID string) error {
	if err := c.clients.Delete(ctx, cardUID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrClientNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
