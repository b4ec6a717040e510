package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"
	"github.com/venkatesh141/Ecom/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderPlacedKey = "order.placed"

// Publisher publishes domain events. Nil disables publishing.
type Publisher interface {
	Publish(routingKey string, body []byte) error
}

type orderPlacedEvent struct {
	OccurredAt int64           `json:"occurred_at"`
	OrderID    int64           `json:"order_id"`
	UserID     int64           `json:"user_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	ItemCount  int             `json:"item_count"`
}

// LineItem is one (product, quantity) pair of an order request.
type LineItem struct {
	ProductID int64
	Quantity  int32
}

// OrderItemFilterParams are the optional predicates plus pagination for the
// admin filter endpoint.
type OrderItemFilterParams struct {
	Status    *model.OrderStatus
	StartDate *time.Time
	EndDate   *time.Time
	ItemID    *int64
	Page      int
	Size      int
}

// OrderItemPage is one page of filtered items with pagination totals.
type OrderItemPage struct {
	Items        []*model.OrderItem
	TotalPage    int
	TotalElement int64
}

type OrderService struct {
	orderDao   *dao.OrderDao
	productDao *dao.ProductDao
	publisher  Publisher
}

func NewOrderService(orderDao *dao.OrderDao, productDao *dao.ProductDao, publisher Publisher) *OrderService {
	return &OrderService{
		orderDao:   orderDao,
		productDao: productDao,
		publisher:  publisher,
	}
}

// PlaceOrder resolves every line item's product, freezes per-item prices at
// product.price x quantity, and persists the order with all items atomically.
// A missing product fails the whole order; nothing is written. The caller's
// identity is an explicit argument, never ambient state.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64, items []LineItem, totalPrice *decimal.Decimal) (*model.Order, error) {
	if len(items) == 0 {
		return nil, e.InvalidArgument("order must contain at least one item")
	}

	orderItems := make([]model.OrderItem, 0, len(items))
	for _, li := range items {
		if li.Quantity < 1 {
			return nil, e.InvalidArgument(fmt.Sprintf("invalid quantity %d for product %d", li.Quantity, li.ProductID))
		}
		product, err := s.productDao.GetByID(ctx, li.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, e.NotFound(e.ERROR_PRODUCT_NOT_EXISTS, "product not found")
			}
			return nil, e.Internal(err)
		}

		orderItems = append(orderItems, model.OrderItem{
			ProductID: product.ID,
			UserID:    userID,
			Quantity:  li.Quantity,
			Price:     product.Price.Mul(decimal.NewFromInt32(li.Quantity)),
			Status:    model.OrderStatusPending,
		})
	}

	// Client override wins only when strictly positive; otherwise the exact
	// decimal sum of the item prices.
	total := decimal.Zero
	if totalPrice != nil && totalPrice.IsPositive() {
		total = *totalPrice
	} else {
		for _, item := range orderItems {
			total = total.Add(item.Price)
		}
	}

	order := &model.Order{
		TotalPrice: total,
		Items:      orderItems,
	}
	if err := s.orderDao.CreateOrderWithItems(ctx, order); err != nil {
		return nil, e.Internal(err)
	}

	s.publishPlaced(order, userID)

	return order, nil
}

// publishPlaced emits the order.placed event best-effort after commit. A
// publish failure never fails the already-persisted order.
func (s *OrderService) publishPlaced(order *model.Order, userID int64) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(orderPlacedEvent{
		OccurredAt: time.Now().Unix(),
		OrderID:    order.ID,
		UserID:     userID,
		TotalPrice: order.TotalPrice,
		ItemCount:  len(order.Items),
	})
	if err != nil {
		return
	}
	if err := s.publisher.Publish(orderPlacedKey, body); err != nil {
		logger.Warn("publish order.placed failed", "order_id", order.ID, "err", err)
	}
}

// UpdateItemStatus overwrites an item's status after validating the status
// name case-insensitively against the enumerated set. Transitions are
// unconstrained; concurrent updates are last-writer-wins.
func (s *OrderService) UpdateItemStatus(ctx context.Context, itemID int64, status string) error {
	parsed, err := model.ParseOrderStatus(status)
	if err != nil {
		return e.InvalidArgument(err.Error())
	}

	if _, err := s.orderDao.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return e.NotFound(e.ERROR_ORDER_ITEM_NOT_EXISTS, "order item not found")
		}
		return e.Internal(err)
	}

	if err := s.orderDao.UpdateItemStatus(ctx, itemID, parsed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return e.NotFound(e.ERROR_ORDER_ITEM_NOT_EXISTS, "order item not found")
		}
		return e.Internal(err)
	}
	return nil
}

// FilterItems runs the composed predicate with pagination and id DESC sort.
// An empty page is a NotFound failure, not an empty result.
func (s *OrderService) FilterItems(ctx context.Context, params OrderItemFilterParams) (*OrderItemPage, error) {
	if params.Page < 0 || params.Size < 1 {
		return nil, e.InvalidArgument("page must be >= 0 and size >= 1")
	}

	filter := dao.OrderItemFilter{
		Status:    params.Status,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		ItemID:    params.ItemID,
	}

	items, total, err := s.orderDao.FilterItems(ctx, filter, params.Page, params.Size)
	if err != nil {
		return nil, e.Internal(err)
	}
	if len(items) == 0 {
		return nil, e.NotFound(e.ERROR_NO_ORDER_FOUND, "no order found")
	}

	totalPage := int((total + int64(params.Size) - 1) / int64(params.Size))
	return &OrderItemPage{
		Items:        items,
		TotalPage:    totalPage,
		TotalElement: total,
	}, nil
}

// DeleteOrder removes an order together with all items it owns.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	if _, err := s.orderDao.GetOrderByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return e.NotFound(e.ERROR_NO_ORDER_FOUND, "order not found")
		}
		return e.Internal(err)
	}
	if err := s.orderDao.DeleteOrder(ctx, orderID); err != nil {
		return e.Internal(err)
	}
	return nil
}
