package queries

import (
	"errors"
	"strings"

	"depot/internal/pkg/guard"
)

var ErrGetArchivedParcelsQueryIsNotConstructed = errors.New(
	"GetArchivedParcelsQuery must be created via NewGetArchivedParcelsQuery constructor",
)

// DefaultArchiveLimit caps the archive listing when no search term is given.
const DefaultArchiveLimit = 100

// GetArchivedParcelsQuery searches signed parcels. The search term matches a substring of
// recipient name, tracking number, phone or postal code, case-insensitively.
type GetArchivedParcelsQuery struct {
	search string

	guard guard.ConstructorGuard
}

func NewGetArchivedParcelsQuery(search string) GetArchivedParcelsQuery {
	return GetArchivedParcelsQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetArchivedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedParcelsQueryIsNotConstructed)
}

func (q GetArchivedParcelsQuery) Search() string {
	return q.search
}
