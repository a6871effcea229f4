package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/domain/services"
	"depot/internal/core/ports"
	"depot/internal/pkg/errs"
)

// CustomerResolver is the part of ResolveCustomerCommandHandler intake depends on.
type CustomerResolver interface {
	Handle(ctx context.Context, cmd ResolveCustomerCommand) (kernel.UUID, error)
}

// IntakeParcelResult reports what intake stored. Call is nil when no arrival call was placed.
type IntakeParcelResult struct {
	ParcelID   kernel.UUID
	CustomerID kernel.UUID
	Label      parcel.Label
	Call       *CallResult
}

// IntakeParcelCommandHandler records a received parcel:
//
//  1. normalizes postal code and address for the configured region
//  2. resolves the recipient (its own unit of work, may create a customer)
//  3. in one unit of work fills the blanks of an unlocked customer from the label and
//     adds the parcel as pending
//  4. optionally calls the recipient once the parcel is committed
//
// The phone is only copied onto the customer when no other customer owns it already.
// A failed or timed out arrival call is reported in the result and never fails the intake.
type IntakeParcelCommandHandler struct {
	uowFactory  UoWFactory
	resolver    CustomerResolver
	normalizer  services.Normalizer
	caller      ports.Caller
	callTimeout time.Duration
	logger      *slog.Logger
}

// NewIntakeParcelCommandHandler creates the handler. A nil caller disables arrival calls.
func NewIntakeParcelCommandHandler(
	uowFactory UoWFactory,
	resolver CustomerResolver,
	normalizer services.Normalizer,
	caller ports.Caller,
	callTimeout time.Duration,
	logger *slog.Logger,
) IntakeParcelCommandHandler {
	return IntakeParcelCommandHandler{
		uowFactory:  uowFactory,
		resolver:    resolver,
		normalizer:  normalizer,
		caller:      caller,
		callTimeout: callTimeout,
		logger:      logger.With("component", "intake_parcel_handler"),
	}
}

func (h *IntakeParcelCommandHandler) Handle(ctx context.Context, cmd IntakeParcelCommand) (IntakeParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return IntakeParcelResult{}, err
	}

	label := cmd.Label()
	label.Postal = h.normalizer.NormalizePostal(label.Postal)
	label.Address = h.normalizer.NormalizeAddress(label.Address, label.Postal)

	resolveCmd, err := NewResolveCustomerCommand(label.RecipientName, label.Phone, label.Address, label.Postal)
	if err != nil {
		return IntakeParcelResult{}, err
	}

	customerID, err := h.resolver.Handle(ctx, resolveCmd)
	if err != nil {
		return IntakeParcelResult{}, err
	}

	if err = h.store(ctx, cmd, label, customerID); err != nil {
		return IntakeParcelResult{}, err
	}

	result := IntakeParcelResult{
		ParcelID:   cmd.ParcelID(),
		CustomerID: customerID,
		Label:      label,
	}

	if h.caller != nil && label.Phone != "" {
		call := h.call(ctx, cmd.ParcelID(), label.Phone)
		result.Call = &call
	}

	return result, nil
}

func (h *IntakeParcelCommandHandler) store(
	ctx context.Context,
	cmd IntakeParcelCommand,
	label parcel.Label,
	customerID kernel.UUID,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.enrichCustomer(ctx, uow.CustomerRepository(), customerID, label); err != nil {
		return err
	}

	p, err := parcel.NewParcel(cmd.ParcelID(), label, cmd.LabelImage(), cmd.CreatedBy(), &customerID)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *IntakeParcelCommandHandler) enrichCustomer(
	ctx context.Context,
	customerRepo ports.CustomerRepository,
	customerID kernel.UUID,
	label parcel.Label,
) error {
	c, err := customerRepo.Get(ctx, customerID)
	if err != nil {
		return err
	}

	if c.Locked() {
		return nil
	}

	contact := customer.Contact{
		Phone:  label.Phone,
		Street: services.StreetOf(label.Address),
		Postal: label.Postal,
	}

	if contact.Phone != "" && c.Phone() == "" {
		owner, err := customerRepo.FindByPhone(ctx, contact.Phone)
		switch {
		case err == nil && !owner.ID().IsEqual(c.ID()):
			contact.Phone = ""
		case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
			return err
		}
	}

	if !c.FillBlanks(contact) {
		return nil
	}

	return customerRepo.Update(ctx, c)
}

func (h *IntakeParcelCommandHandler) call(ctx context.Context, parcelID kernel.UUID, phone string) CallResult {
	result := placeCall(ctx, h.caller, h.callTimeout, parcelID, phone)
	if result.Err != nil {
		h.logger.WarnContext(ctx, "arrival call failed",
			"parcel_id", parcelID.String(),
			"error", result.Err)
	} else {
		h.logger.InfoContext(ctx, "arrival call placed", "parcel_id", parcelID.String())
	}

	return result
}
