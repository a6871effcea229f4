package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/ports"
	"depot/internal/pkg/errs"
)

const callSystemName = "call system"

var ErrCallNotDelivered = errors.New("call was not delivered")

// CallResult is the outcome of one notification attempt.
// Err is an errs.ValueIsRequiredError for parcels without a phone, an errs.CollaboratorError
// when the call system failed or did not deliver, or the repository error for unknown parcels.
type CallResult struct {
	ParcelID  kernel.UUID
	Phone     string
	Delivered bool
	Err       error
}

// NotifyRecipientsCommandHandler calls the recipient of every selected parcel.
// Items are independent: a failure is recorded in that item's result and the
// remaining parcels are still processed. Parcels are read outside a transaction,
// so no transaction stays open while calls are in flight.
type NotifyRecipientsCommandHandler struct {
	uowFactory  ParcelUoWFactory
	caller      ports.Caller
	callTimeout time.Duration
	logger      *slog.Logger
}

func NewNotifyRecipientsCommandHandler(
	uowFactory ParcelUoWFactory,
	caller ports.Caller,
	callTimeout time.Duration,
	logger *slog.Logger,
) NotifyRecipientsCommandHandler {
	return NotifyRecipientsCommandHandler{
		uowFactory:  uowFactory,
		caller:      caller,
		callTimeout: callTimeout,
		logger:      logger.With("component", "notify_recipients_handler"),
	}
}

func (h *NotifyRecipientsCommandHandler) Handle(ctx context.Context, cmd NotifyRecipientsCommand) ([]CallResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	parcelRepo := h.uowFactory.Create().ParcelRepository()

	results := make([]CallResult, 0, len(cmd.ParcelIDs()))
	for _, id := range cmd.ParcelIDs() {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		p, err := parcelRepo.Get(ctx, id)
		if err != nil {
			results = append(results, CallResult{ParcelID: id, Err: err})
			continue
		}

		result := placeCall(ctx, h.caller, h.callTimeout, id, p.Phone())
		if result.Err != nil {
			h.logger.WarnContext(ctx, "notification failed",
				"parcel_id", id.String(),
				"error", result.Err)
		}
		results = append(results, result)
	}

	return results, nil
}

// placeCall runs one call bounded by timeout (no bound when timeout is not positive).
func placeCall(
	ctx context.Context,
	caller ports.Caller,
	timeout time.Duration,
	parcelID kernel.UUID,
	phone string,
) CallResult {
	result := CallResult{ParcelID: parcelID, Phone: phone}
	if phone == "" {
		result.Err = errs.NewValueIsRequiredError("phone")
		return result
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	delivered, err := caller.Call(ctx, phone)
	switch {
	case err != nil && errors.Is(err, errs.ErrCollaboratorUnavailable):
		result.Err = err
	case err != nil:
		result.Err = errs.NewCollaboratorError(callSystemName, err)
	case !delivered:
		result.Err = errs.NewCollaboratorError(callSystemName, ErrCallNotDelivered)
	default:
		result.Delivered = true
	}

	return result
}
