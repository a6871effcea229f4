package queries

import (
	"errors"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrGetPickupHistoryQueryIsNotConstructed = errors.New(
	"GetPickupHistoryQuery must be created via NewGetPickupHistoryQuery constructor",
)

// PickupHistoryLimit is the number of pickups the history shows.
const PickupHistoryLimit = 100

type GetPickupHistoryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPickupHistoryQuery() GetPickupHistoryQuery {
	return GetPickupHistoryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPickupHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupHistoryQueryIsNotConstructed)
}

// PickupHistoryEntry is one pickup event. CustomerName is empty when the
// customer has since been deleted.
type PickupHistoryEntry struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	SignerName   string
	IDType       string
	IDNumber     string
	Timestamp    time.Time
	ParcelCount  int
}
