package parcel

import (
	"errors"
	"strings"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
)

var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Label holds the fields read from (or typed over) a shipping label.
type Label struct {
	Courier       string
	RecipientName string
	Tracking      string
	Phone         string
	Postal        string
	Address       string
}

// Parcel is a package received at the depot, waiting for its recipient.
//
// Invariants:
//   - courier, recipient name and tracking are never empty
//   - tracking numbers are not unique; the same number may be received twice
//   - signedAt and signature are set exactly when the status is Signed
//   - status only moves forward, see Status
type Parcel struct {
	id         kernel.UUID
	label      Label
	labelImage []byte
	signature  []byte
	status     Status
	createdAt  time.Time
	signedAt   *time.Time
	createdBy  string
	customerID *kernel.UUID
	pickupID   *kernel.UUID

	isConstructed bool
}

// NewParcel records a freshly received parcel in Pending status.
// customerID may be nil when the recipient could not be resolved.
func NewParcel(
	id kernel.UUID,
	label Label,
	labelImage []byte,
	createdBy string,
	customerID *kernel.UUID,
) (*Parcel, error) {
	p := &Parcel{
		labelImage:    labelImage,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		createdBy:     strings.TrimSpace(createdBy),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setLabel(label),
		p.setCustomer(customerID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Snapshot carries every stored column of a parcel; used by RestoreParcel.
type Snapshot struct {
	ID         kernel.UUID
	Label      Label
	LabelImage []byte
	Signature  []byte
	Status     Status
	CreatedAt  time.Time
	SignedAt   *time.Time
	CreatedBy  string
	CustomerID *kernel.UUID
	PickupID   *kernel.UUID
}

// RestoreParcel rebuilds a parcel read back from storage.
func RestoreParcel(s Snapshot) (*Parcel, error) {
	p := &Parcel{
		labelImage:    s.LabelImage,
		signature:     s.Signature,
		status:        s.Status,
		createdAt:     s.CreatedAt,
		signedAt:      s.SignedAt,
		createdBy:     s.CreatedBy,
		pickupID:      s.PickupID,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(s.ID),
		p.setLabel(s.Label),
		p.setCustomer(s.CustomerID),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID {
	return p.id
}

func (p *Parcel) Label() Label {
	return p.label
}

func (p *Parcel) Courier() string {
	return p.label.Courier
}

func (p *Parcel) RecipientName() string {
	return p.label.RecipientName
}

func (p *Parcel) Tracking() string {
	return p.label.Tracking
}

func (p *Parcel) Phone() string {
	return p.label.Phone
}

func (p *Parcel) LabelImage() []byte {
	return p.labelImage
}

func (p *Parcel) Signature() []byte {
	return p.signature
}

func (p *Parcel) Status() Status {
	return p.status
}

func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// SignedAt is nil until the parcel is picked up.
func (p *Parcel) SignedAt() *time.Time {
	return p.signedAt
}

func (p *Parcel) CreatedBy() string {
	return p.createdBy
}

// Customer returns the resolved recipient or nil.
func (p *Parcel) Customer() *kernel.UUID {
	return p.customerID
}

// Pickup returns the pickup event that cleared this parcel, if it was part of one.
func (p *Parcel) Pickup() *kernel.UUID {
	return p.pickupID
}

// BelongsTo reports whether the parcel is linked to the given customer.
func (p *Parcel) BelongsTo(customerID kernel.UUID) bool {
	return p.customerID != nil && p.customerID.IsEqual(customerID)
}

// Sign closes out a pending parcel with the recipient's signature.
func (p *Parcel) Sign(signature []byte, at time.Time) error {
	if len(signature) == 0 {
		return errs.NewValueIsRequiredError("signature")
	}

	newStatus, err := p.status.Sign()
	if err != nil {
		return err
	}

	signedAt := at.UTC()
	p.status = newStatus
	p.signature = signature
	p.signedAt = &signedAt
	return nil
}

// SignForPickup signs the parcel as part of a pickup event.
func (p *Parcel) SignForPickup(pickupID kernel.UUID, signature []byte, at time.Time) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}
	if err := p.Sign(signature, at); err != nil {
		return err
	}

	p.pickupID = &pickupID
	return nil
}

// SendBack marks a pending parcel as returned to the courier.
func (p *Parcel) SendBack() error {
	newStatus, err := p.status.SendBack()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// ValidateDiscard checks that the parcel may still be deleted.
func (p *Parcel) ValidateDiscard() error {
	return p.status.ValidateDiscard()
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setLabel(label Label) error {
	label = Label{
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

	p.label = label
	return nil
}

func (p *Parcel) setCustomer(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	id := *customerID
	p.customerID = &id
	return nil
}
