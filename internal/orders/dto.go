package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
)

// OrderDTO is the order payload returned to clients and the admin panel.
type OrderDTO struct {
	ID              string                     `json:"id"`
	OrderID         string                     `json:"orderId"`
	CustomerName    string                     `json:"customerName"`
	CustomerEmail   string                     `json:"customerEmail"`
	CustomerPhone   string                     `json:"customerPhone"`
	CustomerAddress string                     `json:"customerAddress"`
	CustomerCity    string                     `json:"customerCity"`
	CustomerState   string                     `json:"customerState"`
	CustomerPincode string                     `json:"customerPincode"`
	CustomerMessage string                     `json:"customerMessage,omitempty"`
	OrderItems      []models.OrderLineSnapshot `json:"orderItems"`
	TotalSets       int                        `json:"totalSets"`
	TotalAmount     decimal.Decimal            `json:"totalAmount"`
	OrderStatus     string                     `json:"orderStatus"`
	OrderDate       time.Time                  `json:"orderDate"`
}

// StatsDTO summarizes the storefront for the admin dashboard.
type StatsDTO struct {
	TotalProducts int64           `json:"totalProducts"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

func toDTO(m *models.Order) *OrderDTO {
	return &OrderDTO{
		ID:              m.ID,
		OrderID:         m.OrderID,
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerPhone:   m.CustomerPhone,
		CustomerAddress: m.CustomerAddress,
		CustomerCity:    m.CustomerCity,
		CustomerState:   m.CustomerState,
		CustomerPincode: m.CustomerPincode,
		CustomerMessage: m.CustomerMessage,
		OrderItems:      m.Items,
		TotalSets:       m.TotalSets,
		TotalAmount:     m.TotalAmount,
		OrderStatus:     string(m.OrderStatus),
		OrderDate:       m.OrderDate,
	}
}

func toDTOs(items []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(items))
	for i := range items {
		out = append(out, *toDTO(&items[i]))
	}
	return out
}
