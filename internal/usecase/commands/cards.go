package commands

import (
	"context"

	"shelfscan/internal/domain/card"
	"shelfscan/internal/infra"
	"shelfscan/internal/pkg/clock"
	"shelfscan/internal/pkg/errs"
)

type CardCommands struct {
	cards CardRepository
	clock clock.Clock
}

func NewCardCommands(cards CardRepository, clk clock.Clock) *CardCommands {
	return &CardCommands{cards: cards, clock: clk}
}

func (c *CardCommands) Create(ctx context.Context, uid string) error {
	entity, err := card.NewCard(uid, c.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.cards.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrCardAlreadyExists)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *CardCommands) Delete(ctx context.Context, uid string) error {
	if err := c.cards.Delete(ctx, uid); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrCardNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
