package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog listing. The unit of sale is a set: PiecesPerSet
// physical items sold together at PricePerSet.
type Product struct {
	ID           string          `gorm:"column:id;primaryKey"`
	Name         string          `gorm:"column:name;not null"`
	Category     string          `gorm:"column:category;not null"`
	PiecesPerSet int             `gorm:"column:pieces_per_set;not null"`
	PricePerSet  decimal.Decimal `gorm:"column:price_per_set;type:numeric(10,2);not null"`
	Description  string          `gorm:"column:description;not null;default:''"`
	ImageURL     string          `gorm:"column:image_url;not null;default:''"`
	InStock      bool            `gorm:"column:in_stock;not null;default:true"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}
