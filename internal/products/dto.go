package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
)

// ProductDTO is the catalog payload returned to clients.
type ProductDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	PiecesPerSet int             `json:"piecesPerSet"`
	PricePerSet  decimal.Decimal `json:"pricePerSet"`
	Description  string          `json:"description,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	InStock      bool            `json:"inStock"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toDTO(m *models.Product) *ProductDTO {
	return &ProductDTO{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		PiecesPerSet: m.PiecesPerSet,
		PricePerSet:  m.PricePerSet,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		InStock:      m.InStock,
		CreatedAt:    m.CreatedAt,
	}
}

func toDTOs(items []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(items))
	for i := range items {
		out = append(out, *toDTO(&items[i]))
	}
	return out
}
