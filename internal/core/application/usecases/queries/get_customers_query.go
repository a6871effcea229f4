package queries

import (
	"errors"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery lists the whole registry, ordered by name.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

type GetCustomersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Email     string
	Street    string
	Postal    string
	Locked    bool
	CreatedAt time.Time
}
