package queries

import (
	"context"
	"strings"

	"depot/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetArchivedParcelsQueryHandler returns signed parcels, most recently signed first.
// Without a search term only the latest DefaultArchiveLimit rows are returned.
type GetArchivedParcelsQueryHandler struct {
	db *gorm.DB
}

func NewGetArchivedParcelsQueryHandler(db *gorm.DB) GetArchivedParcelsQueryHandler {
	return GetArchivedParcelsQueryHandler{db: db}
}

func (h GetArchivedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedParcelsQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var raw *gorm.DB
	if query.Search() == "" {
		raw = db.Raw(`
			SELECT `+parcelViewColumns+`
			FROM parcels
			WHERE status = ?
			ORDER BY signed_at DESC NULLS LAST
			LIMIT ?
		`, parcel.Signed.String(), DefaultArchiveLimit)
	} else {
		pattern := "%" + likeEscaper.Replace(query.Search()) + "%"
		raw = db.Raw(`
			SELECT `+parcelViewColumns+`
			FROM parcels
			WHERE status = ?
			  AND (name ILIKE ? OR tracking ILIKE ? OR phone ILIKE ? OR postal ILIKE ?)
			ORDER BY signed_at DESC NULLS LAST
		`, parcel.Signed.String(), pattern, pattern, pattern, pattern)
	}

	rows, err := raw.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelViews(rows)
}
