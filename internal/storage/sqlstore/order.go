package sqlstore

import (
	"context"
	stderrors "errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/enums"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
)

type orderStore struct {
	db *gorm.DB
}

func (s *orderStore) Create(ctx context.Context, order *models.Order) error {
	if err := scoped(ctx, s.db).Create(order).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Wrap(errors.CodeConflict, err, "order identifier already exists")
		}
		return errors.Persistence(err, "create", "order")
	}
	return nil
}

func (s *orderStore) GetAll(ctx context.Context, filter storage.OrderFilter) ([]models.Order, error) {
	q := scoped(ctx, s.db).Order("order_date DESC")
	if filter.Status != "" {
		q = q.Where("order_status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, errors.Persistence(err, "list", "orders")
	}
	return orders, nil
}

func (s *orderStore) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := scoped(ctx, s.db).First(&order, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeNotFound, "order not found")
		}
		return nil, errors.Persistence(err, "get", "order")
	}
	return &order, nil
}

func (s *orderStore) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) (int64, error) {
	res := scoped(ctx, s.db).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("order_status", status)
	if res.Error != nil {
		return 0, errors.Persistence(res.Error, "update", "order status")
	}
	return res.RowsAffected, nil
}

func (s *orderStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := scoped(ctx, s.db).Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, errors.Persistence(err, "count", "orders")
	}
	return count, nil
}

func (s *orderStore) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := scoped(ctx, s.db).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, errors.Persistence(err, "sum", "order revenue")
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
