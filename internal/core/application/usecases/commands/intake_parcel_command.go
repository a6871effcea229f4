package commands

import (
	"errors"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var ErrIntakeParcelCommandIsNotConstructed = errors.New(
	"IntakeParcelCommand must be created via NewIntakeParcelCommand constructor",
)

// IntakeParcelCommand carries the label fields the operator confirmed after a scan.
// Postal and address may be raw; the handler normalizes them.
//
// Example:
//
//	cmd, err := NewIntakeParcelCommand(parcel.Label{
//	    Courier:       "Purolator",
//	    RecipientName: "JOHN SMITH",
//	    Tracking:      "329012345678",
//	    Phone:         "705-555-1234",
//	    Postal:        "p5a2s9",
//	    Address:       "12 Main St",
//	}, image, "front-desk")
type IntakeParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	label      parcel.Label
	labelImage []byte
	createdBy  string

	guard guard.ConstructorGuard
}

// NewIntakeParcelCommand rejects a label without courier, recipient name or tracking number,
// reporting every missing field at once.
func NewIntakeParcelCommand(label parcel.Label, labelImage []byte, createdBy string) (IntakeParcelCommand, error) {
	cmd := IntakeParcelCommand{
		parcelID:   kernel.NewUUID(),
		labelImage: labelImage,
		createdBy:  strings.TrimSpace(createdBy),
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setLabel(label); err != nil {
		return IntakeParcelCommand{}, err
	}

	return cmd, nil
}

func (c IntakeParcelCommand) Validate() error {
	return c.guard.Validate(ErrIntakeParcelCommandIsNotConstructed)
}

// ParcelID is the identity the new parcel will be stored under.
func (c IntakeParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c IntakeParcelCommand) Label() parcel.Label {
	return c.label
}

func (c IntakeParcelCommand) LabelImage() []byte {
	return c.labelImage
}

func (c IntakeParcelCommand) CreatedBy() string {
	return c.createdBy
}

func (c *IntakeParcelCommand) setLabel(label parcel.Label) error {
	label = parcel.Label{
		Courier:       strings.TrimSpace(label.Courier),
		RecipientName: strings.TrimSpace(label.RecipientName),
		Tracking:      strings.TrimSpace(label.Tracking),
		Phone:         strings.TrimSpace(label.Phone),
		Postal:        strings.TrimSpace(label.Postal),
		Address:       strings.TrimSpace(label.Address),
	}

	var missing []error
	if label.Courier == "" {
		missing = append(missing, errs.NewValueIsRequiredError("courier"))
	}
	if label.RecipientName == "" {
		missing = append(missing, errs.NewValueIsRequiredError("name"))
	}
	if label.Tracking == "" {
		missing = append(missing, errs.NewValueIsRequiredError("tracking"))
	}
	if err := errors.Join(missing...); err != nil {
		return err
	}

	c.label = label
	return nil
}
