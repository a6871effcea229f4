// Package pickuprepo appends Pickup events to the "pickups" table.
package pickuprepo

import (
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/pickup"

	"github.com/google/uuid"
)

type PickupDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	SignerName string
	IDType     string
	IDNumber   string
	Signature  []byte    `gorm:"not null"`
	Timestamp  time.Time `gorm:"not null;index"`
}

func (PickupDTO) TableName() string {
	return "pickups"
}

func fromDomain(p *pickup.Pickup) PickupDTO {
	signer := p.Signer()

	return PickupDTO{
		ID:         p.ID().Bytes(),
		CustomerID: p.Customer().Bytes(),
		SignerName: signer.SignerName,
		IDType:     signer.IDType,
		IDNumber:   signer.IDNumber,
		Signature:  p.Signature(),
		Timestamp:  p.Timestamp(),
	}
}

func toDomain(dto PickupDTO) (*pickup.Pickup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return pickup.RestorePickup(id, customerID, pickup.Identification{
		SignerName: dto.SignerName,
		IDType:     dto.IDType,
		IDNumber:   dto.IDNumber,
	}, dto.Signature, dto.Timestamp)
}
