package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	"gorm.io/gorm"
)

type PaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) domain.PaymentStore {
	return &PaymentRepo{db: db}
}

// Save inserts new records and performs an optimistic version-checked
// update for existing ones. Only the lifecycle-mutable fields are written
// on update; orderId, amount, currency and paymentMethod stay immutable.
func (r *PaymentRepo) Save(ctx context.Context, record *domain.PaymentRecord) error {
	if record.ID == 0 {
		err := r.db.WithContext(ctx).Create(record).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateOrder
		}
		return err
	}

	current := record.Version
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&domain.PaymentRecord{}).
		Where("id = ? AND version = ?", record.ID, current).
		Updates(map[string]interface{}{
			"status":         record.Status,
			"transaction_id": record.TransactionID,
			"payer_id":       record.PayerID,
			"version":        current + 1,
			"updated_at":     now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrStaleRecord
	}

	record.Version = current + 1
	record.UpdatedAt = now
	return nil
}

func (r *PaymentRepo) FindByOrderID(ctx context.Context, orderID string) (*domain.PaymentRecord, error) {
	var record domain.PaymentRecord
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *PaymentRepo) FindAll(ctx context.Context) ([]domain.PaymentRecord, error) {
	var records []domain.PaymentRecord
	err := r.db.WithContext(ctx).Order("id").Find(&records).Error
	return records, err
}

func (r *PaymentRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.PaymentRecord{}).Count(&count).Error
	return count, err
}

func (r *PaymentRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&domain.PaymentRecord{})
	return result.RowsAffected, result.Error
}
