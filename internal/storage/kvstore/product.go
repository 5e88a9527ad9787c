package kvstore

import (
	"context"
	"time"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis"
)

const productDoc = "product"

type productStore struct {
	client *redis.Client
}

func (s *productStore) Create(ctx context.Context, product *models.Product) error {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}

	doc, err := marshalDoc(product, "create", "product")
	if err != nil {
		return err
	}
	created, err := s.client.SetNX(ctx, s.client.Key(productDoc, product.ID), doc, 0)
	if err != nil {
		return errors.Persistence(err, "create", "product")
	}
	if !created {
		return errors.New(errors.CodeConflict, "product id already exists")
	}
	if _, err := s.client.SAdd(ctx, s.client.Key(productsIndex), product.ID); err != nil {
		return errors.Persistence(err, "index", "product")
	}
	return nil
}

func (s *productStore) GetAll(ctx context.Context, filter storage.ProductFilter) ([]models.Product, error) {
	products, err := loadIndexed[models.Product](ctx, s.client, productsIndex, productDoc)
	if err != nil {
		return nil, err
	}

	if filter.Search != "" {
		filtered := products[:0]
		for _, p := range products {
			if containsFold(p.Name, filter.Search) || containsFold(p.Category, filter.Search) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sortNewestFirst(products,
		func(p models.Product) time.Time { return p.CreatedAt },
		func(p models.Product) string { return p.ID })

	if filter.Limit > 0 && len(products) > filter.Limit {
		products = products[:filter.Limit]
	}
	return products, nil
}

func (s *productStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return getDoc[models.Product](ctx, s.client, productDoc, id, "product")
}

func (s *productStore) Update(ctx context.Context, id string, patch storage.ProductPatch) (int64, error) {
	product, err := getDoc[models.Product](ctx, s.client, productDoc, id, "product")
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.PiecesPerSet != nil {
		product.PiecesPerSet = *patch.PiecesPerSet
	}
	if patch.PricePerSet != nil {
		product.PricePerSet = *patch.PricePerSet
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	if patch.InStock != nil {
		product.InStock = *patch.InStock
	}

	if err := putDoc(ctx, s.client, productDoc, id, product, "update", "product"); err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *productStore) Delete(ctx context.Context, id string) (int64, error) {
	removed, err := s.client.Del(ctx, s.client.Key(productDoc, id))
	if err != nil {
		return 0, errors.Persistence(err, "delete", "product")
	}
	if _, err := s.client.SRem(ctx, s.client.Key(productsIndex), id); err != nil {
		return 0, errors.Persistence(err, "deindex", "product")
	}
	return removed, nil
}

func (s *productStore) Count(ctx context.Context) (int64, error) {
	ids, err := s.client.SMembers(ctx, s.client.Key(productsIndex))
	if err != nil {
		return 0, errors.Persistence(err, "count", "products")
	}
	return int64(len(ids)), nil
}
