package queries

import (
	"errors"
	"fmt"

	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var ErrGetStaleParcelsQueryIsNotConstructed = errors.New(
	"GetStaleParcelsQuery must be created via NewGetStaleParcelsQuery constructor",
)

// DefaultStaleAfterDays is how long a parcel may wait before it shows up as stale.
const DefaultStaleAfterDays = 5

// GetStaleParcelsQuery finds pending parcels older than a number of days: candidates for a
// reminder call or for being sent back.
type GetStaleParcelsQuery struct {
	olderThanDays int

	guard guard.ConstructorGuard
}

func NewGetStaleParcelsQuery(olderThanDays int) (GetStaleParcelsQuery, error) {
	if olderThanDays < 0 {
		return GetStaleParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"days",
			fmt.Errorf("%d is negative", olderThanDays),
		)
	}

	return GetStaleParcelsQuery{
		olderThanDays: olderThanDays,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetStaleParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleParcelsQueryIsNotConstructed)
}

func (q GetStaleParcelsQuery) OlderThanDays() int {
	return q.olderThanDays
}
