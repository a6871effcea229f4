package commands

import (
	"context"
	"time"
)

// SignParcelCommandHandler moves one pending parcel to signed and stamps signed_at.
// An unknown parcel yields errs.ObjectNotFoundError, a parcel that is no longer
// pending yields errs.ValueIsInvalidError.
type SignParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewSignParcelCommandHandler(uowFactory ParcelUoWFactory) SignParcelCommandHandler {
	return SignParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SignParcelCommandHandler) Handle(ctx context.Context, cmd SignParcelCommand) error {
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

	if err = p.Sign(cmd.Signature(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
