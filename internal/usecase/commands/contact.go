package commands

import (
	"context"
	"strings"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMessageRequired = errs.New("message is required")

type ContactRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type ContactCommands interface {
	SubmitMessage(ctx context.Context, req ContactRequest) (uuid.UUID, error)
}

type contactUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewContactUseCase(uow shared.UnitOfWork, clk clock.Clock) ContactCommands {
	return &contactUseCaseImpl{uow: uow, clock: clk}
}

func (uc *contactUseCaseImpl) SubmitMessage(ctx context.Context, req ContactRequest) (uuid.UUID, error) {
	email, err := account.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	if strings.TrimSpace(req.Message) == "" {
		return uuid.Nil, invalid(ErrMessageRequired)
	}

	msg := shared.ContactMessage{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email.Value(),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: uc.clock.Now(),
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Contacts().Create(ctx, tx.DB(), msg)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return id, nil
}
