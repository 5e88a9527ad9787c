// Package order serves placed orders: customer lookups plus the admin
// panel's listing, status management and dashboard aggregates.
package order

import (
	"context"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/enums"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
)

const defaultRecentLimit = 5

// Service exposes order read and admin operations. Order creation goes
// through the checkout flow.
type Service interface {
	List(ctx context.Context, input ListInput) ([]OrderDTO, error)
	Get(ctx context.Context, id string) (*OrderDTO, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Recent(ctx context.Context, limit int) ([]OrderDTO, error)
	Stats(ctx context.Context) (*StatsDTO, error)
}

// ListInput narrows the admin order listing.
type ListInput struct {
	Status string
	Limit  int
}

type service struct {
	orders   storage.OrderStore
	products storage.ProductStore
	logg     *logger.Logger
}

func NewService(orders storage.OrderStore, products storage.ProductStore, logg *logger.Logger) Service {
	return &service{orders: orders, products: products, logg: logg}
}

func (s *service) List(ctx context.Context, input ListInput) ([]OrderDTO, error) {
	filter := storage.OrderFilter{Limit: input.Limit}
	if input.Status != "" {
		status, err := enums.ParseOrderStatus(input.Status)
		if err != nil {
			return nil, errors.New(errors.CodeValidation, err.Error())
		}
		filter.Status = status
	}

	orders, err := s.orders.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toDTOs(orders), nil
}

func (s *service) Get(ctx context.Context, id string) (*OrderDTO, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(order), nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) error {
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return errors.New(errors.CodeValidation, err.Error())
	}

	changed, err := s.orders.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return err
	}
	if changed == 0 {
		return errors.New(errors.CodeNotFound, "order not found")
	}

	ctx = s.logg.WithFields(ctx, map[string]any{"order_id": id, "status": parsed})
	s.logg.Info(ctx, "order status updated")
	return nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]OrderDTO, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	orders, err := s.orders.GetAll(ctx, storage.OrderFilter{Limit: limit})
	if err != nil {
		return nil, err
	}
	return toDTOs(orders), nil
}

func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsDTO{
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalRevenue:  revenue,
	}, nil
}
