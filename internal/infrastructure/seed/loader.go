package seed

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	"go.uber.org/zap"
)

// Loader bulk-inserts payment records for seeding and administrative
// import. Duplicate orderIds are skipped and logged rather than aborting
// the batch; that leniency is deliberate here and only here, the
// lifecycle orchestrator always surfaces conflicts.
type Loader struct {
	store domain.PaymentStore
	log   *zap.Logger
}

func NewLoader(store domain.PaymentStore, log *zap.Logger) *Loader {
	return &Loader{store: store, log: log}
}

func (l *Loader) LoadReader(ctx context.Context, r io.Reader) (int, error) {
	var records []domain.PaymentRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return 0, err
	}

	saved := 0
	for i := range records {
		record := records[i]
		record.ID = 0
		if record.Status == "" {
			record.Status = domain.PaymentStatusPending
		}

		if err := l.store.Save(ctx, &record); err != nil {
			if errors.Is(err, domain.ErrDuplicateOrder) {
				l.log.Warn("skipping duplicate record during import",
					zap.String("order_id", record.OrderID))
				continue
			}
			return saved, err
		}
		saved++
	}
	return saved, nil
}

func (l *Loader) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return l.LoadReader(ctx, f)
}

// SeedIfEmpty loads the seed file only when the store holds no records.
func (l *Loader) SeedIfEmpty(ctx context.Context, path string) error {
	count, err := l.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.log.Info("store already has payment data, skipping seed",
			zap.Int64("count", count))
		return nil
	}

	saved, err := l.LoadFile(ctx, path)
	if err != nil {
		return err
	}
	l.log.Info("seeded payment records", zap.Int("count", saved))
	return nil
}
