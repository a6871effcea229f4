// Package customerrepo persists the Customer aggregate in the "customers" table.
package customerrepo

import (
	"time"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const (
	// PhoneIndex enforces at most one customer per phone. NULL phones do not collide.
	PhoneIndex = "idx_customers_phone"

	// PhonelessNameIndex enforces at most one phone-less customer per case-insensitive name,
	// so concurrent resolutions of the same name-only recipient cannot both insert.
	PhonelessNameIndex = "idx_customers_phoneless_name"
)

// PhonelessNameIndexSQL creates PhonelessNameIndex. AutoMigrate cannot express expression
// or partial indexes, so the migration runs it separately.
const PhonelessNameIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS ` + PhonelessNameIndex +
	` ON customers (LOWER(name)) WHERE phone IS NULL`

// CustomerDTO is the row shape of the customers table.
// Phone is nullable so the unique index only covers known numbers.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Phone     *string   `gorm:"uniqueIndex:idx_customers_phone"`
	Email     string
	Street    string
	Postal    string
	Locked    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	var phone *string
	if p := c.Phone(); p != "" {
		phone = &p
	}

	return CustomerDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Phone:     phone,
		Email:     c.Email(),
		Street:    c.Street(),
		Postal:    c.Postal(),
		Locked:    c.Locked(),
		CreatedAt: c.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone := ""
	if dto.Phone != nil {
		phone = *dto.Phone
	}

	return customer.RestoreCustomer(id, customer.Contact{
		Name:   dto.Name,
		Phone:  phone,
		Email:  dto.Email,
		Street: dto.Street,
		Postal: dto.Postal,
	}, dto.Locked, dto.CreatedAt)
}
