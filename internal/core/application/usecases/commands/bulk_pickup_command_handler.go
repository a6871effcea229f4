package commands

import (
	"context"
	"fmt"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/pickup"
	"depot/internal/pkg/errs"
)

// BulkPickupResult identifies the stored pickup and how many parcels it cleared.
type BulkPickupResult struct {
	PickupID kernel.UUID
	Count    int
}

// BulkPickupCommandHandler finalizes a pickup in a single unit of work:
// the customer must exist, the pickup event is inserted, and every selected parcel must
// belong to that customer and still be pending. All parcels get the same signature, the
// same signed_at instant and the pickup id. Any failure rolls back the whole pickup,
// including the already inserted event.
type BulkPickupCommandHandler struct {
	uowFactory UoWFactory
}

func NewBulkPickupCommandHandler(uowFactory UoWFactory) BulkPickupCommandHandler {
	return BulkPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *BulkPickupCommandHandler) Handle(ctx context.Context, cmd BulkPickupCommand) (BulkPickupResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkPickupResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkPickupResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return BulkPickupResult{}, err
	}

	now := time.Now().UTC()
	event, err := pickup.NewPickup(cmd.PickupID(), cmd.CustomerID(), cmd.Signer(), cmd.Signature(), now)
	if err != nil {
		return BulkPickupResult{}, err
	}

	if err = uow.PickupRepository().Add(ctx, event); err != nil {
		return BulkPickupResult{}, err
	}

	parcelRepo := uow.ParcelRepository()
	for _, id := range cmd.ParcelIDs() {
		p, err := parcelRepo.Get(ctx, id)
		if err != nil {
			return BulkPickupResult{}, err
		}

		if !p.BelongsTo(cmd.CustomerID()) {
			return BulkPickupResult{}, errs.NewValueIsInvalidErrorWithCause(
				"parcel ids",
				fmt.Errorf("parcel %s does not belong to customer %s", id, cmd.CustomerID()),
			)
		}

		if err = p.SignForPickup(event.ID(), cmd.Signature(), now); err != nil {
			return BulkPickupResult{}, err
		}

		if err = parcelRepo.Update(ctx, p); err != nil {
			return BulkPickupResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return BulkPickupResult{}, err
	}

	return BulkPickupResult{
		PickupID: event.ID(),
		Count:    len(cmd.ParcelIDs()),
	}, nil
}
