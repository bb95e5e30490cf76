package gormdb

import (
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/gormdb/migrations"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	return migrations.Run(db)
}
