package commands

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/services"
	"depot/internal/pkg/errs"
)

// ResolveCustomerCommandHandler finds the customer a label belongs to, creating one when the
// registry has no match. Lookup order:
//
//  1. exact phone match, when a phone is given
//  2. case-insensitive name match; with a phone given only phone-less customers qualify,
//     so two different known numbers never collapse into one customer
//  3. insert a new unlocked customer
//
// Existing customers are never modified here. Two concurrent resolutions of the same
// recipient race on the unique indexes; the loser gets errs.ConflictError from the insert,
// rolls back and repeats the lookup once, which then finds the winner's row.
//
// Example:
//
//	cmd, _ := NewResolveCustomerCommand("JOHN SMITH", "705-555-1234", "12 Main St, Elliot Lake, ON", "P5A 2S9")
//	id, err := handler.Handle(ctx, cmd)
type ResolveCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewResolveCustomerCommandHandler(uowFactory CustomerUoWFactory) ResolveCustomerCommandHandler {
	return ResolveCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ResolveCustomerCommandHandler) Handle(ctx context.Context, cmd ResolveCustomerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	id, err := h.resolve(ctx, cmd)
	if errors.Is(err, errs.ErrConflict) {
		return h.resolve(ctx, cmd)
	}

	return id, err
}

func (h *ResolveCustomerCommandHandler) resolve(ctx context.Context, cmd ResolveCustomerCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	if cmd.Phone() != "" {
		found, err := customerRepo.FindByPhone(ctx, cmd.Phone())
		if err == nil {
			return found.ID(), nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.UUID{}, err
		}
	}

	if cmd.Name() != "" {
		found, err := customerRepo.FindByName(ctx, cmd.Name(), cmd.Phone() != "")
		if err == nil {
			return found.ID(), nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.UUID{}, err
		}
	}

	created, err := customer.NewCustomer(kernel.NewUUID(), customer.Contact{
		Name:   cmd.Name(),
		Phone:  cmd.Phone(),
		Street: services.StreetOf(cmd.Address()),
		Postal: cmd.Postal(),
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = customerRepo.Add(ctx, created); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return created.ID(), nil
}
