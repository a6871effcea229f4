package ports

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/pickup"
)

// PickupRepository appends pickup events. There is no update or delete.
type PickupRepository interface {
	Add(ctx context.Context, aggregate *pickup.Pickup) error
	Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error)
}
