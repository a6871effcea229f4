package commands

import (
	"errors"
	"strings"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand is an explicit edit from the registry screen. Every field is replaced,
// so an empty phone clears the stored one. It applies to locked customers too.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	contact    customer.Contact
	locked     bool

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	contact customer.Contact,
	locked bool,
) (UpdateCustomerCommand, error) {
	var errName error
	if strings.TrimSpace(contact.Name) == "" {
		errName = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(customerID.Validate(), errName); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		contact:    contact,
		locked:     locked,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c UpdateCustomerCommand) Contact() customer.Contact {
	return c.contact
}

func (c UpdateCustomerCommand) Locked() bool {
	return c.locked
}
