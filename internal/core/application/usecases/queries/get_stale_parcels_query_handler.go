package queries

import (
	"context"
	"time"

	"depot/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetStaleParcelsQueryHandler returns stale pending parcels, oldest first.
type GetStaleParcelsQueryHandler struct {
	db *gorm.DB
}

func NewGetStaleParcelsQueryHandler(db *gorm.DB) GetStaleParcelsQueryHandler {
	return GetStaleParcelsQueryHandler{db: db}
}

func (h GetStaleParcelsQueryHandler) Handle(ctx context.Context, query GetStaleParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -query.OlderThanDays())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelViewColumns+`
		FROM parcels
		WHERE status = ? AND created_at < ?
		ORDER BY created_at ASC
	`, parcel.Pending.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelViews(rows)
}
