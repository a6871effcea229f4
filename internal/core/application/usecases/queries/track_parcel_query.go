package queries

import (
	"errors"
	"strings"
	"time"

	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery is the public lookup a recipient runs with their tracking number.
type TrackParcelQuery struct {
	tracking string

	guard guard.ConstructorGuard
}

func NewTrackParcelQuery(tracking string) (TrackParcelQuery, error) {
	tracking = strings.TrimSpace(tracking)
	if tracking == "" {
		return TrackParcelQuery{}, errs.NewValueIsRequiredError("tracking")
	}

	return TrackParcelQuery{
		tracking: tracking,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

func (q TrackParcelQuery) Tracking() string {
	return q.tracking
}

// TrackParcelQueryResponse exposes only what a member of the public may see:
// no names, phones or addresses.
type TrackParcelQueryResponse struct {
	Tracking  string
	Courier   string
	Status    parcel.Status
	CreatedAt time.Time
	SignedAt  *time.Time
}
