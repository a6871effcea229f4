package postgres

import (
	"fmt"

	"depot/internal/adapters/out/postgres/customerrepo"
	"depot/internal/adapters/out/postgres/parcelrepo"
	"depot/internal/adapters/out/postgres/pickuprepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the customers, parcels and pickups tables and the
// indexes the customer resolver relies on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&parcelrepo.ParcelDTO{},
		&pickuprepo.PickupDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec(customerrepo.PhonelessNameIndexSQL).Error; err != nil {
		return fmt.Errorf("create %s: %w", customerrepo.PhonelessNameIndex, err)
	}

	return nil
}
