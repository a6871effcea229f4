// Package parcelrepo persists the Parcel aggregate in the "parcels" table.
package parcelrepo

import (
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the row shape of the parcels table.
// Status is stored as text ("pending", "signed", "sent_back") so reports can read it directly.
// customer_id deliberately has no foreign key: deleting a customer leaves its parcels in place.
type ParcelDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Courier       string    `gorm:"not null"`
	RecipientName string    `gorm:"column:name;not null"`
	Tracking      string    `gorm:"not null;index"`
	Phone         string
	Postal        string
	Address       string
	LabelImage    []byte
	Signature     []byte
	Status        string    `gorm:"not null;index;default:pending"`
	CreatedAt     time.Time `gorm:"not null;index"`
	SignedAt      *time.Time
	CreatedBy     string
	CustomerID    *uuid.UUID `gorm:"type:uuid;index"`
	PickupID      *uuid.UUID `gorm:"type:uuid;index"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	label := p.Label()

	return ParcelDTO{
		ID:            p.ID().Bytes(),
		Courier:       label.Courier,
		RecipientName: label.RecipientName,
		Tracking:      label.Tracking,
		Phone:         label.Phone,
		Postal:        label.Postal,
		Address:       label.Address,
		LabelImage:    p.LabelImage(),
		Signature:     p.Signature(),
		Status:        p.Status().String(),
		CreatedAt:     p.CreatedAt(),
		SignedAt:      p.SignedAt(),
		CreatedBy:     p.CreatedBy(),
		CustomerID:    rawID(p.Customer()),
		PickupID:      rawID(p.Pickup()),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	customerID, err := domainID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	pickupID, err := domainID(dto.PickupID)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(parcel.Snapshot{
		ID: id,
		Label: parcel.Label{
			Courier:       dto.Courier,
			RecipientName: dto.RecipientName,
			Tracking:      dto.Tracking,
			Phone:         dto.Phone,
			Postal:        dto.Postal,
			Address:       dto.Address,
		},
		LabelImage: dto.LabelImage,
		Signature:  dto.Signature,
		Status:     status,
		CreatedAt:  dto.CreatedAt,
		SignedAt:   dto.SignedAt,
		CreatedBy:  dto.CreatedBy,
		CustomerID: customerID,
		PickupID:   pickupID,
	})
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
