package pickuprepo

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/pickup"
	"depot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickupRepository implements ports.PickupRepository using GORM.
type GormPickupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPickupRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupRepository {
	return &GormPickupRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPickupRepository) Add(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
