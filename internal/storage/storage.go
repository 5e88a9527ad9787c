// Package storage defines the persistence gateway the storefront runs on.
// Implementations live in sqlstore (sqlite and postgres through gorm) and
// kvstore (redis); every backend honors the same contract so the rest of
// the application never knows which one is wired in.
package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/enums"
)

// ProductFilter narrows product listings. Search matches name or category
// case-insensitively; Limit caps the result count when positive.
type ProductFilter struct {
	Search string
	Limit  int
}

// OrderFilter narrows order listings. Status filters on the lifecycle
// state when set; Limit caps the result count when positive.
type OrderFilter struct {
	Status enums.OrderStatus
	Limit  int
}

// ProductPatch carries a partial product update. Nil fields are left
// untouched.
type ProductPatch struct {
	Name         *string
	Category     *string
	PiecesPerSet *int
	PricePerSet  *decimal.Decimal
	Description  *string
	ImageURL     *string
	InStock      *bool
}

// Fields maps the set patch fields to their column names.
func (p ProductPatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.PiecesPerSet != nil {
		fields["pieces_per_set"] = *p.PiecesPerSet
	}
	if p.PricePerSet != nil {
		fields["price_per_set"] = *p.PricePerSet
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	if p.InStock != nil {
		fields["in_stock"] = *p.InStock
	}
	return fields
}

// ProductStore persists the catalog. GetByID returns a not-found error
// for unknown ids; Update and Delete report how many rows changed so
// callers can distinguish a miss from a no-op.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	GetAll(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// OrderStore persists placed orders. Create enforces uniqueness of the
// human-facing order identifier.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

// SettingStore persists key/value configuration. Seed inserts the given
// defaults without clobbering rows that already exist.
type SettingStore interface {
	GetAll(ctx context.Context) ([]models.Setting, error)
	GetByKey(ctx context.Context, key string) (*models.Setting, error)
	Update(ctx context.Context, key, value string) (int64, error)
	Seed(ctx context.Context, defaults []models.Setting) error
}

// Store is the full persistence gateway handed to the service layer.
type Store interface {
	Products() ProductStore
	Orders() OrderStore
	Settings() SettingStore
	Ping(ctx context.Context) error
	Close() error
}
