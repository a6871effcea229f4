package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrGetPendingParcelsQueryIsNotConstructed = errors.New(
	"GetPendingParcelsQuery must be created via NewGetPendingParcelsQuery constructor",
)

// GetPendingParcelsQuery lists every parcel still waiting at the counter.
type GetPendingParcelsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingParcelsQuery() GetPendingParcelsQuery {
	return GetPendingParcelsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingParcelsQueryIsNotConstructed)
}
