package commands

import (
	"context"
)

type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the contact fields and the lock flag. Unknown customers yield
// errs.ObjectNotFoundError, a phone owned by someone else errs.ConflictError.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = c.UpdateContact(cmd.Contact()); err != nil {
		return err
	}

	if cmd.Locked() {
		c.Lock()
	} else {
		c.Unlock()
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
