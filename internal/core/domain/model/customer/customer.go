package customer

import (
	"errors"
	"strings"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not built by NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a recipient known to the depot. It is the aggregate the resolver deduplicates against.
//
// Invariants:
//   - name is never empty
//   - phone is either empty or unique across customers (enforced by the store)
//   - a locked customer is never modified by automatic enrichment, only by explicit edits
type Customer struct {
	id        kernel.UUID
	name      string
	phone     string
	email     string
	street    string
	postal    string
	locked    bool
	createdAt time.Time

	isConstructed bool
}

// Contact groups the editable fields of a customer.
type Contact struct {
	Name   string
	Phone  string
	Email  string
	Street string
	Postal string
}

// NewCustomer registers a new, unlocked recipient.
func NewCustomer(id kernel.UUID, contact Contact) (*Customer, error) {
	c := &Customer{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setContact(contact),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer read back from storage.
func RestoreCustomer(id kernel.UUID, contact Contact, locked bool, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		locked:        locked,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setContact(contact),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate reports whether the customer was built by a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

// Phone returns the stored phone number or "" when unknown.
func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Street() string {
	return c.street
}

func (c *Customer) Postal() string {
	return c.postal
}

// Locked reports whether automatic enrichment is disabled for this customer.
func (c *Customer) Locked() bool {
	return c.locked
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// Contact returns a copy of the editable fields.
func (c *Customer) Contact() Contact {
	return Contact{
		Name:   c.name,
		Phone:  c.phone,
		Email:  c.email,
		Street: c.street,
		Postal: c.postal,
	}
}

// UpdateContact replaces every editable field. This is the operator's explicit edit,
// so it applies to locked customers too.
func (c *Customer) UpdateContact(contact Contact) error {
	return c.setContact(contact)
}

// Lock freezes the record against automatic enrichment.
func (c *Customer) Lock() {
	c.locked = true
}

func (c *Customer) Unlock() {
	c.locked = false
}

// FillBlanks copies values from src into fields that are currently empty.
// It never overwrites a stored value and does nothing for locked customers.
// Returns true when at least one field changed.
func (c *Customer) FillBlanks(src Contact) bool {
	if c.locked {
		return false
	}

	changed := false
	fill := func(dst *string, v string) {
		v = strings.TrimSpace(v)
		if *dst == "" && v != "" {
			*dst = v
			changed = true
		}
	}

	fill(&c.phone, src.Phone)
	fill(&c.email, src.Email)
	fill(&c.street, src.Street)
	fill(&c.postal, src.Postal)

	return changed
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setContact(contact Contact) error {
	name := strings.TrimSpace(contact.Name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	c.phone = strings.TrimSpace(contact.Phone)
	c.email = strings.TrimSpace(contact.Email)
	c.street = strings.TrimSpace(contact.Street)
	c.postal = strings.TrimSpace(contact.Postal)
	return nil
}
