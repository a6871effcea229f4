package commands

import (
	"errors"
	"strings"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand adds a customer by hand, e.g. a regular who asked to be locked
// against label enrichment.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	contact    customer.Contact
	locked     bool

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(contact customer.Contact, locked bool) (RegisterCustomerCommand, error) {
	if strings.TrimSpace(contact.Name) == "" {
		return RegisterCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}

	return RegisterCustomerCommand{
		customerID: kernel.NewUUID(),
		contact:    contact,
		locked:     locked,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID is the identity the customer will be stored under.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c RegisterCustomerCommand) Contact() customer.Contact {
	return c.contact
}

func (c RegisterCustomerCommand) Locked() bool {
	return c.locked
}
