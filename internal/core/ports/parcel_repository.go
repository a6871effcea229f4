package ports

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

// ParcelRepository persists parcels. Tracking numbers are not unique.
type ParcelRepository interface {
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update stores status, signature, signed_at and pickup link of an existing parcel.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
