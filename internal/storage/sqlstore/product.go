package sqlstore

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
)

type productStore struct {
	db *gorm.DB
}

func (s *productStore) Create(ctx context.Context, product *models.Product) error {
	if err := scoped(ctx, s.db).Create(product).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Wrap(errors.CodeConflict, err, "product id already exists")
		}
		return errors.Persistence(err, "create", "product")
	}
	return nil
}

func (s *productStore) GetAll(ctx context.Context, filter storage.ProductFilter) ([]models.Product, error) {
	q := scoped(ctx, s.db).Order("created_at DESC")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, errors.Persistence(err, "list", "products")
	}
	return products, nil
}

func (s *productStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := scoped(ctx, s.db).First(&product, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeNotFound, "product not found")
		}
		return nil, errors.Persistence(err, "get", "product")
	}
	return &product, nil
}

func (s *productStore) Update(ctx context.Context, id string, patch storage.ProductPatch) (int64, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return 0, nil
	}
	res := scoped(ctx, s.db).Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, errors.Persistence(res.Error, "update", "product")
	}
	return res.RowsAffected, nil
}

func (s *productStore) Delete(ctx context.Context, id string) (int64, error) {
	res := scoped(ctx, s.db).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return 0, errors.Persistence(res.Error, "delete", "product")
	}
	return res.RowsAffected, nil
}

func (s *productStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := scoped(ctx, s.db).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, errors.Persistence(err, "count", "products")
	}
	return count, nil
}
