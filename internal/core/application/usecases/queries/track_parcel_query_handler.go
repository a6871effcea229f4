package queries

import (
	"context"
	"database/sql"
	"errors"

	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler returns the most recently received parcel with the tracking number.
// Tracking numbers are not unique, so older matches are ignored.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

func (h TrackParcelQueryHandler) Handle(ctx context.Context, query TrackParcelQuery) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	var (
		resp   TrackParcelQueryResponse
		status string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT tracking, courier, status, created_at, signed_at
		FROM parcels
		WHERE tracking = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.Tracking()).Row()

	if err := row.Scan(&resp.Tracking, &resp.Courier, &status, &resp.CreatedAt, &resp.SignedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("tracking", query.Tracking())
		}
		return TrackParcelQueryResponse{}, err
	}

	var err error
	if resp.Status, err = parcel.ParseStatus(status); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	return resp, nil
}
