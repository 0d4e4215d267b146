package db

import (
	"fmt"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.SeedHistory{},

		&types.Company{},
		&types.Country{},
		&types.Contact{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
