package queries

import (
	"context"

	"depot/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetPendingParcelsQueryHandler returns pending parcels, newest first.
type GetPendingParcelsQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingParcelsQueryHandler(db *gorm.DB) GetPendingParcelsQueryHandler {
	return GetPendingParcelsQueryHandler{db: db}
}

func (h GetPendingParcelsQueryHandler) Handle(ctx context.Context, query GetPendingParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelViewColumns+`
		FROM parcels
		WHERE status = ?
		ORDER BY created_at DESC
	`, parcel.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelViews(rows)
}
