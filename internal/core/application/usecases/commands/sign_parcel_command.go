package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var ErrSignParcelCommandIsNotConstructed = errors.New(
	"SignParcelCommand must be created via NewSignParcelCommand constructor",
)

// SignParcelCommand closes out a single parcel with the recipient's signature image.
type SignParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	signature []byte

	guard guard.ConstructorGuard
}

func NewSignParcelCommand(parcelID kernel.UUID, signature []byte) (SignParcelCommand, error) {
	cmd := SignParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setSignature(signature),
	); err != nil {
		return SignParcelCommand{}, err
	}

	return cmd, nil
}

func (c SignParcelCommand) Validate() error {
	return c.guard.Validate(ErrSignParcelCommandIsNotConstructed)
}

func (c SignParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c SignParcelCommand) Signature() []byte {
	return c.signature
}

func (c *SignParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *SignParcelCommand) setSignature(signature []byte) error {
	if len(signature) == 0 {
		return errs.NewValueIsRequiredError("signature")
	}

	c.signature = signature
	return nil
}
