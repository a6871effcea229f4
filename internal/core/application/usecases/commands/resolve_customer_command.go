package commands

import (
	"errors"
	"strings"

	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var ErrResolveCustomerCommandIsNotConstructed = errors.New(
	"ResolveCustomerCommand must be created via NewResolveCustomerCommand constructor",
)

// ResolveCustomerCommand asks for the registry entry of a label recipient.
// Address and postal are expected to be normalized already; they are only used
// when a new customer has to be created.
type ResolveCustomerCommand struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string
	postal  string

	guard guard.ConstructorGuard
}

// NewResolveCustomerCommand needs a name or a phone. A phone-only recipient can be matched
// but not created, since a customer always has a name.
func NewResolveCustomerCommand(name, phone, address, postal string) (ResolveCustomerCommand, error) {
	cmd := ResolveCustomerCommand{
		name:    strings.TrimSpace(name),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		postal:  strings.TrimSpace(postal),
		guard:   guard.NewConstructorGuard(),
	}

	if cmd.name == "" && cmd.phone == "" {
		return ResolveCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}

	return cmd, nil
}

func (c ResolveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrResolveCustomerCommandIsNotConstructed)
}

func (c ResolveCustomerCommand) Name() string {
	return c.name
}

func (c ResolveCustomerCommand) Phone() string {
	return c.phone
}

func (c ResolveCustomerCommand) Address() string {
	return c.address
}

func (c ResolveCustomerCommand) Postal() string {
	return c.postal
}
