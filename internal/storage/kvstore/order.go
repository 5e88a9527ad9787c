package kvstore

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/enums"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis"
)

const (
	orderDoc   = "order"
	orderIdent = "order_ident"
)

type orderStore struct {
	client *redis.Client
}

func (s *orderStore) Create(ctx context.Context, order *models.Order) error {
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}
	if order.OrderStatus == "" {
		order.OrderStatus = enums.OrderStatusPending
	}

	// The human-facing identifier is the uniqueness boundary, matching
	// the unique index the relational backend enforces.
	claimed, err := s.client.SetNX(ctx, s.client.Key(orderIdent, order.OrderID), order.ID, 0)
	if err != nil {
		return errors.Persistence(err, "create", "order")
	}
	if !claimed {
		return errors.New(errors.CodeConflict, "order identifier already exists")
	}

	if err := putDoc(ctx, s.client, orderDoc, order.ID, order, "create", "order"); err != nil {
		return err
	}
	if _, err := s.client.SAdd(ctx, s.client.Key(ordersIndex), order.ID); err != nil {
		return errors.Persistence(err, "index", "order")
	}
	return nil
}

func (s *orderStore) GetAll(ctx context.Context, filter storage.OrderFilter) ([]models.Order, error) {
	orders, err := loadIndexed[models.Order](ctx, s.client, ordersIndex, orderDoc)
	if err != nil {
		return nil, err
	}

	if filter.Status != "" {
		filtered := orders[:0]
		for _, o := range orders {
			if o.OrderStatus == filter.Status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	sortNewestFirst(orders,
		func(o models.Order) time.Time { return o.OrderDate },
		func(o models.Order) string { return o.ID })

	if filter.Limit > 0 && len(orders) > filter.Limit {
		orders = orders[:filter.Limit]
	}
	return orders, nil
}

func (s *orderStore) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return getDoc[models.Order](ctx, s.client, orderDoc, id, "order")
}

func (s *orderStore) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) (int64, error) {
	order, err := getDoc[models.Order](ctx, s.client, orderDoc, id, "order")
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return 0, nil
		}
		return 0, err
	}

	order.OrderStatus = status
	if err := putDoc(ctx, s.client, orderDoc, id, order, "update", "order status"); err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *orderStore) Count(ctx context.Context) (int64, error) {
	ids, err := s.client.SMembers(ctx, s.client.Key(ordersIndex))
	if err != nil {
		return 0, errors.Persistence(err, "count", "orders")
	}
	return int64(len(ids)), nil
}

func (s *orderStore) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	orders, err := loadIndexed[models.Order](ctx, s.client, ordersIndex, orderDoc)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}
	return total, nil
}
