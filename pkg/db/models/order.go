package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/enums"
)

// OrderLineSnapshot is the frozen copy of one cart line embedded in an
// order at creation time. It stays valid even when the product it came
// from is later edited or deleted.
type OrderLineSnapshot struct {
	ProductID    string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	PiecesPerSet int             `json:"piecesPerSet"`
	PricePerSet  decimal.Decimal `json:"pricePerSet"`
	ImageURL     string          `json:"imageUrl"`
	Quantity     int             `json:"quantity"`
}

// Order is a placed customer order. TotalSets and TotalAmount equal the
// aggregation over Items at the instant of creation and are never
// recomputed. OrderStatus is the only field mutated after creation;
// orders are never deleted.
type Order struct {
	ID              string              `gorm:"column:id;primaryKey"`
	OrderID         string              `gorm:"column:order_id;uniqueIndex;not null"`
	CustomerName    string              `gorm:"column:customer_name;not null"`
	CustomerEmail   string              `gorm:"column:customer_email;not null"`
	CustomerPhone   string              `gorm:"column:customer_phone;not null"`
	CustomerAddress string              `gorm:"column:customer_address;not null"`
	CustomerCity    string              `gorm:"column:customer_city;not null"`
	CustomerState   string              `gorm:"column:customer_state;not null"`
	CustomerPincode string              `gorm:"column:customer_pincode;not null"`
	CustomerMessage string              `gorm:"column:customer_message;not null;default:''"`
	Items           []OrderLineSnapshot `gorm:"column:order_items;type:text;serializer:json"`
	TotalSets       int                 `gorm:"column:total_sets;not null"`
	TotalAmount     decimal.Decimal     `gorm:"column:total_amount;type:numeric(10,2);not null"`
	OrderStatus     enums.OrderStatus   `gorm:"column:order_status;not null;default:'pending'"`
	OrderDate       time.Time           `gorm:"column:order_date;autoCreateTime"`
}
