// Package queries contains the read side of the depot: lists and lookups that read
// PostgreSQL directly with raw SQL and never load aggregates.
package queries

import (
	"database/sql"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelView is the row shape shared by every parcel listing.
type ParcelView struct {
	ID            kernel.UUID
	Courier       string
	RecipientName string
	Tracking      string
	Phone         string
	Postal        string
	Address       string
	Status        parcel.Status
	CreatedAt     time.Time
	SignedAt      *time.Time
	CreatedBy     string
	CustomerID    *kernel.UUID
	PickupID      *kernel.UUID
}

// parcelViewColumns must stay in the order scanParcelViews reads them.
const parcelViewColumns = `
	id,
	courier,
	name,
	tracking,
	COALESCE(phone, ''),
	COALESCE(postal, ''),
	COALESCE(address, ''),
	status,
	created_at,
	signed_at,
	COALESCE(created_by, ''),
	customer_id,
	pickup_id`

func scanParcelViews(rows *sql.Rows) ([]ParcelView, error) {
	views := make([]ParcelView, 0)

	for rows.Next() {
		var (
			view       ParcelView
			id         uuid.UUID
			status     string
			customerID uuid.NullUUID
			pickupID   uuid.NullUUID
		)

		err := rows.Scan(
			&id,
			&view.Courier,
			&view.RecipientName,
			&view.Tracking,
			&view.Phone,
			&view.Postal,
			&view.Address,
			&status,
			&view.CreatedAt,
			&view.SignedAt,
			&view.CreatedBy,
			&customerID,
			&pickupID,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.Status, err = parcel.ParseStatus(status); err != nil {
			return nil, err
		}
		if view.CustomerID, err = nullableID(customerID); err != nil {
			return nil, err
		}
		if view.PickupID, err = nullableID(pickupID); err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func nullableID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromGoogle(raw.UUID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
