package commands

import (
	"context"
)

// SendBackParcelsCommandHandler marks every selected parcel sent_back in one unit of work.
// An unknown or non-pending parcel rejects the whole batch. Returns the number of parcels changed.
type SendBackParcelsCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewSendBackParcelsCommandHandler(uowFactory ParcelUoWFactory) SendBackParcelsCommandHandler {
	return SendBackParcelsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SendBackParcelsCommandHandler) Handle(ctx context.Context, cmd SendBackParcelsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	for _, id := range cmd.ParcelIDs() {
		p, err := parcelRepo.Get(ctx, id)
		if err != nil {
			return 0, err
		}

		if err = p.SendBack(); err != nil {
			return 0, err
		}

		if err = parcelRepo.Update(ctx, p); err != nil {
			return 0, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(cmd.ParcelIDs()), nil
}
