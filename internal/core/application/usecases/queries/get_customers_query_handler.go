package queries

import (
	"context"

	"depot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			COALESCE(phone, ''),
			COALESCE(email, ''),
			COALESCE(street, ''),
			COALESCE(postal, ''),
			locked,
			created_at
		FROM customers
		ORDER BY name, created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetCustomersQueryResponse
			id   uuid.UUID
		)

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.Email,
			&resp.Street,
			&resp.Postal,
			&resp.Locked,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}

		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
