package queries

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/guard"
)

var ErrGetCustomerParcelsQueryIsNotConstructed = errors.New(
	"GetCustomerParcelsQuery must be created via NewGetCustomerParcelsQuery constructor",
)

// GetCustomerParcelsQuery lists the parcels of one customer in one status.
// It backs the pickup screen, where the clerk ticks the parcels being collected.
type GetCustomerParcelsQuery struct {
	customerID kernel.UUID
	status     parcel.Status

	guard guard.ConstructorGuard
}

// NewGetCustomerParcelsQuery defaults to pending parcels when status is parcel.Unknown.
func NewGetCustomerParcelsQuery(customerID kernel.UUID, status parcel.Status) (GetCustomerParcelsQuery, error) {
	if status == parcel.Unknown {
		status = parcel.Pending
	}

	if err := errors.Join(customerID.Validate(), status.Validate()); err != nil {
		return GetCustomerParcelsQuery{}, err
	}

	return GetCustomerParcelsQuery{
		customerID: customerID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerParcelsQueryIsNotConstructed)
}

func (q GetCustomerParcelsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q GetCustomerParcelsQuery) Status() parcel.Status {
	return q.status
}
