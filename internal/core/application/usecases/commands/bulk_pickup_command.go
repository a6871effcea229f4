package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/pickup"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	ErrBulkPickupCommandIsNotConstructed = errors.New(
		"BulkPickupCommand must be created via NewBulkPickupCommand constructor",
	)

	// ErrEmptySelection is returned by every batch command built from an empty id list.
	ErrEmptySelection = errs.NewValueIsRequiredError("parcel ids")
)

// BulkPickupCommand records one recipient collecting several parcels under a single signature.
//
// Example:
//
//	cmd, err := NewBulkPickupCommand(customerID, []kernel.UUID{first, second}, pickup.Identification{
//	    SignerName: "Jane Smith",
//	    IDType:     "Driver's licence",
//	    IDNumber:   "S1234-56789",
//	}, signaturePNG)
//	if errors.Is(err, ErrEmptySelection) {
//	    // nothing was ticked
//	}
type BulkPickupCommand struct { //nolint:recvcheck //using for validation
	pickupID   kernel.UUID
	customerID kernel.UUID
	parcelIDs  []kernel.UUID
	signer     pickup.Identification
	signature  []byte

	guard guard.ConstructorGuard
}

// NewBulkPickupCommand collapses repeated parcel ids. An empty selection yields ErrEmptySelection.
func NewBulkPickupCommand(
	customerID kernel.UUID,
	parcelIDs []kernel.UUID,
	signer pickup.Identification,
	signature []byte,
) (BulkPickupCommand, error) {
	cmd := BulkPickupCommand{
		pickupID: kernel.NewUUID(),
		signer:   signer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setParcelIDs(parcelIDs),
		cmd.setSignature(signature),
	); err != nil {
		return BulkPickupCommand{}, err
	}

	return cmd, nil
}

func (c BulkPickupCommand) Validate() error {
	return c.guard.Validate(ErrBulkPickupCommandIsNotConstructed)
}

// PickupID is the identity the pickup event will be stored under.
func (c BulkPickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

func (c BulkPickupCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c BulkPickupCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}

func (c BulkPickupCommand) Signer() pickup.Identification {
	return c.signer
}

func (c BulkPickupCommand) Signature() []byte {
	return c.signature
}

func (c *BulkPickupCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *BulkPickupCommand) setParcelIDs(ids []kernel.UUID) error {
	unique, err := uniqueIDs(ids)
	if err != nil {
		return err
	}

	c.parcelIDs = unique
	return nil
}

func (c *BulkPickupCommand) setSignature(signature []byte) error {
	if len(signature) == 0 {
		return errs.NewValueIsRequiredError("signature")
	}

	c.signature = signature
	return nil
}

// uniqueIDs validates a selection and drops repeated ids, keeping first-occurrence order.
func uniqueIDs(ids []kernel.UUID) ([]kernel.UUID, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}

	seen := make(map[string]struct{}, len(ids))
	unique := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id.String()]; ok {
			continue
		}
		seen[id.String()] = struct{}{}
		unique = append(unique, id)
	}

	return unique, nil
}
