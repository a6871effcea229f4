package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrNotifyRecipientsCommandIsNotConstructed = errors.New(
	"NotifyRecipientsCommand must be created via NewNotifyRecipientsCommand constructor",
)

// NotifyRecipientsCommand asks for one call per selected parcel.
type NotifyRecipientsCommand struct { //nolint:recvcheck //using for validation
	parcelIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewNotifyRecipientsCommand(parcelIDs []kernel.UUID) (NotifyRecipientsCommand, error) {
	ids, err := uniqueIDs(parcelIDs)
	if err != nil {
		return NotifyRecipientsCommand{}, err
	}

	return NotifyRecipientsCommand{
		parcelIDs: ids,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c NotifyRecipientsCommand) Validate() error {
	return c.guard.Validate(ErrNotifyRecipientsCommandIsNotConstructed)
}

func (c NotifyRecipientsCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}
