// Package product manages the saree catalog: storefront listings plus the
// admin panel's create, update and delete operations.
package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
)

// Service exposes catalog management operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*ProductDTO, error)
	List(ctx context.Context, input ListInput) ([]ProductDTO, error)
	Get(ctx context.Context, id string) (*ProductDTO, error)
	Update(ctx context.Context, id string, input UpdateInput) error
	Delete(ctx context.Context, id string) error
}

// CreateInput holds the payload to create a product. ID is optional; one
// is generated when absent.
type CreateInput struct {
	ID           string
	Name         string
	Category     string
	PiecesPerSet int
	PricePerSet  decimal.Decimal
	Description  string
	ImageURL     string
	InStock      *bool
}

// UpdateInput holds optional mutation values for a product.
type UpdateInput struct {
	Name         *string
	Category     *string
	PiecesPerSet *int
	PricePerSet  *decimal.Decimal
	Description  *string
	ImageURL     *string
	InStock      *bool
}

// ListInput narrows the catalog listing.
type ListInput struct {
	Search string
	Limit  int
}

type service struct {
	store storage.ProductStore
	logg  *logger.Logger
}

func NewService(store storage.ProductStore, logg *logger.Logger) Service {
	return &service{store: store, logg: logg}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*ProductDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = generateProductID()
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	product := &models.Product{
		ID:           id,
		Name:         strings.TrimSpace(input.Name),
		Category:     strings.TrimSpace(input.Category),
		PiecesPerSet: input.PiecesPerSet,
		PricePerSet:  input.PricePerSet,
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		InStock:      inStock,
	}

	if err := s.store.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithField(ctx, "product_id", product.ID), "product created")
	return toDTO(product), nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]ProductDTO, error) {
	products, err := s.store.GetAll(ctx, storage.ProductFilter{
		Search: strings.TrimSpace(input.Search),
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, err
	}
	return toDTOs(products), nil
}

func (s *service) Get(ctx context.Context, id string) (*ProductDTO, error) {
	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(product), nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateInput) error {
	if err := validateUpdate(input); err != nil {
		return err
	}

	changed, err := s.store.Update(ctx, id, storage.ProductPatch{
		Name:         input.Name,
		Category:     input.Category,
		PiecesPerSet: input.PiecesPerSet,
		PricePerSet:  input.PricePerSet,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		InStock:      input.InStock,
	})
	if err != nil {
		return err
	}
	if changed == 0 {
		return errors.New(errors.CodeNotFound, "product not found")
	}

	s.logg.Info(s.logg.WithField(ctx, "product_id", id), "product updated")
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.New(errors.CodeNotFound, "product not found")
	}

	s.logg.Info(s.logg.WithField(ctx, "product_id", id), "product deleted")
	return nil
}

func validateCreate(input CreateInput) error {
	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Category) == "" {
		missing = append(missing, "category")
	}
	if input.PiecesPerSet <= 0 {
		missing = append(missing, "piecesPerSet")
	}
	if input.PricePerSet.LessThanOrEqual(decimal.Zero) {
		missing = append(missing, "pricePerSet")
	}
	if len(missing) > 0 {
		return errors.New(errors.CodeValidation,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}
	return nil
}

func validateUpdate(input UpdateInput) error {
	var invalid []string
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		invalid = append(invalid, "name")
	}
	if input.Category != nil && strings.TrimSpace(*input.Category) == "" {
		invalid = append(invalid, "category")
	}
	if input.PiecesPerSet != nil && *input.PiecesPerSet <= 0 {
		invalid = append(invalid, "piecesPerSet")
	}
	if input.PricePerSet != nil && input.PricePerSet.LessThanOrEqual(decimal.Zero) {
		invalid = append(invalid, "pricePerSet")
	}
	if len(invalid) > 0 {
		return errors.New(errors.CodeValidation,
			fmt.Sprintf("Invalid fields: %s", strings.Join(invalid, ", ")))
	}
	return nil
}

func generateProductID() string {
	return fmt.Sprintf("prod_%d", time.Now().UnixMilli())
}
