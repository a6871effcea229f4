package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetCustomerParcelsQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerParcelsQueryHandler(db *gorm.DB) GetCustomerParcelsQueryHandler {
	return GetCustomerParcelsQueryHandler{db: db}
}

// Handle returns the customer's parcels, newest first. An unknown customer yields an empty list.
func (h GetCustomerParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerParcelsQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelViewColumns+`
		FROM parcels
		WHERE customer_id = ? AND status = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes(), query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelViews(rows)
}
