package commands

import (
	"context"
)

// DiscardParcelCommandHandler deletes a pending parcel. Signed and sent back parcels are
// history and cannot be discarded.
type DiscardParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewDiscardParcelCommandHandler(uowFactory ParcelUoWFactory) DiscardParcelCommandHandler {
	return DiscardParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DiscardParcelCommandHandler) Handle(ctx context.Context, cmd DiscardParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = p.ValidateDiscard(); err != nil {
		return err
	}

	if err = parcelRepo.Delete(ctx, p.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
