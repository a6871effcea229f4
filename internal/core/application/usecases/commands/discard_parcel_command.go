package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrDiscardParcelCommandIsNotConstructed = errors.New(
	"DiscardParcelCommand must be created via NewDiscardParcelCommand constructor",
)

// DiscardParcelCommand removes a parcel that was received by mistake (the operator's "skip").
type DiscardParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDiscardParcelCommand(parcelID kernel.UUID) (DiscardParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return DiscardParcelCommand{}, err
	}

	return DiscardParcelCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DiscardParcelCommand) Validate() error {
	return c.guard.Validate(ErrDiscardParcelCommandIsNotConstructed)
}

func (c DiscardParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
