package gormdb

import (
	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	"github.com/phrimp/vnvodich-payment-service/utils/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the Postgres database. TranslateError is required:
// the store relies on gorm.ErrDuplicatedKey to signal a lost create race.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
}

func NewTestConnection() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	db.AutoMigrate(&domain.PaymentRecord{})
	return db, nil
}
