// Package ports defines the contracts between the depot's application core and its adapters:
// repositories and the unit of work for PostgreSQL, and the external collaborators
// (OCR engine, call system).
package ports

import (
	"context"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
)

// CustomerRepository persists the customer registry.
// Lookups that find nothing return an errs.ObjectNotFoundError.
type CustomerRepository interface {
	// Add inserts a new customer. A phone already owned by another customer, or a second
	// phone-less customer with the same case-insensitive name, yields errs.ConflictError.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update stores every field of an existing customer. Same conflict rules as Add.
	Update(ctx context.Context, aggregate *customer.Customer) error

	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes the customer row. Parcels that reference it keep the dangling id.
	Delete(ctx context.Context, id kernel.UUID) error

	// FindByPhone matches the phone number exactly.
	FindByPhone(ctx context.Context, phone string) (*customer.Customer, error)

	// FindByName matches the name case-insensitively, oldest customer first.
	// With phoneless set only customers without a phone qualify.
	FindByName(ctx context.Context, name string, phoneless bool) (*customer.Customer, error)
}
