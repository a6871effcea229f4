package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrSendBackParcelsCommandIsNotConstructed = errors.New(
	"SendBackParcelsCommand must be created via NewSendBackParcelsCommand constructor",
)

// SendBackParcelsCommand returns uncollected parcels to their couriers.
type SendBackParcelsCommand struct { //nolint:recvcheck //using for validation
	parcelIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewSendBackParcelsCommand(parcelIDs []kernel.UUID) (SendBackParcelsCommand, error) {
	ids, err := uniqueIDs(parcelIDs)
	if err != nil {
		return SendBackParcelsCommand{}, err
	}

	return SendBackParcelsCommand{
		parcelIDs: ids,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SendBackParcelsCommand) Validate() error {
	return c.guard.Validate(ErrSendBackParcelsCommandIsNotConstructed)
}

func (c SendBackParcelsCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}
