package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	apperrors "github.com/phrimp/vnvodich-payment-service/internal/domain/errors"
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/seed"
	"go.uber.org/zap"
)

// AdminHandler serves the bulk import/seed collaborator endpoints. These
// sit outside the lifecycle core: conflicts during batch imports are
// skipped, not surfaced.
type AdminHandler struct {
	store    domain.PaymentStore
	loader   *seed.Loader
	seedFile string
	log      *zap.Logger
}

func NewAdminHandler(store domain.PaymentStore, loader *seed.Loader, seedFile string, log *zap.Logger) *AdminHandler {
	return &AdminHandler{store: store, loader: loader, seedFile: seedFile, log: log}
}

func (h *AdminHandler) ListAll(c echo.Context) error {
	records, err := h.store.FindAll(c.Request().Context())
	if err != nil {
		return apperrors.ErrInternal()
	}
	return c.JSON(http.StatusOK, records)
}

// Import loads payment records from an uploaded JSON file.
func (h *AdminHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.ErrInvalidPaymentRequest("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.ErrInternal()
	}
	defer file.Close()

	saved, err := h.loader.LoadReader(c.Request().Context(), file)
	if err != nil {
		h.log.Error("import failed", zap.Error(err))
		return apperrors.ErrInvalidPaymentRequest("failed to import payment data")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": fmt.Sprintf("Successfully imported %d payment records", saved),
		"count":   saved,
	})
}

// ImportDefault loads payment records from the configured seed file.
func (h *AdminHandler) ImportDefault(c echo.Context) error {
	if h.seedFile == "" {
		return apperrors.ErrInvalidPaymentRequest("no seed file configured")
	}

	saved, err := h.loader.LoadFile(c.Request().Context(), h.seedFile)
	if err != nil {
		h.log.Error("default import failed", zap.String("file", h.seedFile), zap.Error(err))
		return apperrors.ErrInternal()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": fmt.Sprintf("Successfully imported %d payment records from %s", saved, h.seedFile),
		"count":   saved,
	})
}

// Clear deletes all payment records.
func (h *AdminHandler) Clear(c echo.Context) error {
	deleted, err := h.store.DeleteAll(c.Request().Context())
	if err != nil {
		return apperrors.ErrInternal()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": fmt.Sprintf("Successfully deleted all %d payment records", deleted),
	})
}

// Add inserts a single payment record from the request body.
func (h *AdminHandler) Add(c echo.Context) error {
	var record domain.PaymentRecord
	if err := c.Bind(&record); err != nil {
		return apperrors.ErrInvalidPaymentRequest("invalid request body")
	}

	record.ID = 0
	if record.Status == "" {
		record.Status = domain.PaymentStatusPending
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	if err := h.store.Save(c.Request().Context(), &record); err != nil {
		if errors.Is(err, domain.ErrDuplicateOrder) {
			return apperrors.ErrOrderAlreadyInitiated(record.OrderID)
		}
		return apperrors.ErrInternal()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Payment added successfully",
		"payment": record,
	})
}

// AddBatch inserts multiple payment records, skipping duplicates.
func (h *AdminHandler) AddBatch(c echo.Context) error {
	saved, err := h.loader.LoadReader(c.Request().Context(), c.Request().Body)
	if err != nil {
		return apperrors.ErrInvalidPaymentRequest("invalid request body")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": fmt.Sprintf("Successfully added %d payment records", saved),
		"count":   saved,
	})
}
