// Package pickup contains the Pickup record: proof that a recipient collected one or more parcels.
// Pickups are append-only; nothing updates or deletes them.
package pickup

import (
	"errors"
	"strings"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
)

var ErrPickupIsNotConstructed = errors.New("Pickup must be created via NewPickup constructor")

// Identification is what the counter clerk records about the person collecting.
type Identification struct {
	SignerName string
	IDType     string
	IDNumber   string
}

type Pickup struct {
	id         kernel.UUID
	customerID kernel.UUID
	signer     Identification
	signature  []byte
	timestamp  time.Time

	isConstructed bool
}

// NewPickup records a pickup by customerID at the given instant.
// The signature is required; identification fields are optional.
func NewPickup(
	id kernel.UUID,
	customerID kernel.UUID,
	signer Identification,
	signature []byte,
	at time.Time,
) (*Pickup, error) {
	p := &Pickup{
		signer: Identification{
			SignerName: strings.TrimSpace(signer.SignerName),
			IDType:     strings.TrimSpace(signer.IDType),
			IDNumber:   strings.TrimSpace(signer.IDNumber),
		},
		signature:     signature,
		timestamp:     at.UTC(),
		isConstructed: true,
	}

	var errSignature error
	if len(signature) == 0 {
		errSignature = errs.NewValueIsRequiredError("signature")
	}

	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		errSignature,
	); err != nil {
		return nil, err
	}

	p.id = id
	p.customerID = customerID
	return p, nil
}

// RestorePickup rebuilds a stored pickup.
func RestorePickup(
	id kernel.UUID,
	customerID kernel.UUID,
	signer Identification,
	signature []byte,
	at time.Time,
) (*Pickup, error) {
	return NewPickup(id, customerID, signer, signature, at)
}

func (p *Pickup) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPickupIsNotConstructed
	}
	return nil
}

func (p *Pickup) ID() kernel.UUID {
	return p.id
}

func (p *Pickup) Customer() kernel.UUID {
	return p.customerID
}

func (p *Pickup) Signer() Identification {
	return p.signer
}

func (p *Pickup) Signature() []byte {
	return p.signature
}

// Timestamp is the single instant stamped on every parcel of the pickup.
func (p *Pickup) Timestamp() time.Time {
	return p.timestamp
}
