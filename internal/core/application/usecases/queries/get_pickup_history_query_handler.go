package queries

import (
	"context"

	"depot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickupHistoryQueryHandler returns the latest pickups with the customer name and
// the number of parcels each one cleared.
type GetPickupHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetPickupHistoryQueryHandler(db *gorm.DB) GetPickupHistoryQueryHandler {
	return GetPickupHistoryQueryHandler{db: db}
}

func (h GetPickupHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPickupHistoryQuery,
) ([]PickupHistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]PickupHistoryEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.customer_id,
			COALESCE(c.name, ''),
			COALESCE(p.signer_name, ''),
			COALESCE(p.id_type, ''),
			COALESCE(p.id_number, ''),
			p."timestamp",
			(SELECT COUNT(*) FROM parcels pc WHERE pc.pickup_id = p.id)
		FROM pickups p
		LEFT JOIN customers c ON c.id = p.customer_id
		ORDER BY p."timestamp" DESC
		LIMIT ?
	`, PickupHistoryLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry      PickupHistoryEntry
			id         uuid.UUID
			customerID uuid.UUID
		)

		err = rows.Scan(
			&id,
			&customerID,
			&entry.CustomerName,
			&entry.SignerName,
			&entry.IDType,
			&entry.IDNumber,
			&entry.Timestamp,
			&entry.ParcelCount,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if entry.CustomerID, err = kernel.UUIDFromGoogle(customerID); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
