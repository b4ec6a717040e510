package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a single order item. The initial
// state is always PENDING; transitions are unconstrained, any status may be
// set over any other.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusReturned  OrderStatus = "RETURNED"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:   {},
	OrderStatusConfirmed: {},
	OrderStatusShipped:   {},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
	OrderStatusReturned:  {},
}

// ParseOrderStatus matches a status name case-insensitively against the
// enumerated set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := orderStatuses[status]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

// Order owns its items: the DAO deletes them explicitly together with the
// order, there is no reliance on database-side cascades.
type Order struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"order_item_list,omitempty"`
}

func (*Order) TableName() string {
	return "orders"
}

// OrderItem records one purchased line. Price is product.price x quantity,
// computed at placement and never recalculated afterwards.
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	UserID    int64           `gorm:"not null;index" json:"user_id"`
	Quantity  int32           `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Status    OrderStatus     `gorm:"size:20;not null;default:PENDING;index" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (*OrderItem) TableName() string {
	return "order_items"
}
