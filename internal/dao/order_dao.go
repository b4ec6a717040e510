package dao

import (
	"context"

	"github.com/venkatesh141/Ecom/internal/model"

	"gorm.io/gorm"
)

type OrderDao struct {
	db *gorm.DB
}

func NewOrderDao(db *gorm.DB) *OrderDao {
	return &OrderDao{db: db}
}

// CreateOrderWithItems persists the order and all of its items in a single
// transaction: either every row is written or none is. Items get their
// OrderID back-reference before the insert.
func (d *OrderDao) CreateOrderWithItems(ctx context.Context, order *model.Order) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.CreateInBatches(items, len(items)).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

// GetOrderByID loads an order with its items.
func (d *OrderDao) GetOrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var order model.Order
	err := d.db.WithContext(ctx).Preload("Items").First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder removes an order and its items in one transaction. The order
// owns its items exclusively, so deletion is explicit rather than left to
// database cascades.
func (d *OrderDao) DeleteOrder(ctx context.Context, orderID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, orderID).Error
	})
}

// GetItemByID fetches a single order item.
func (d *OrderDao) GetItemByID(ctx context.Context, itemID int64) (*model.OrderItem, error) {
	var item model.OrderItem
	err := d.db.WithContext(ctx).First(&item, itemID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItemStatus overwrites the item's status. Concurrent writers are
// last-writer-wins; no version token is kept.
func (d *OrderDao) UpdateItemStatus(ctx context.Context, itemID int64, status model.OrderStatus) error {
	result := d.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("id = ?", itemID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FilterItems applies the composed filter with pagination, sorted by id
// descending, and returns the matching page plus the total match count.
// Product and user are preloaded for the summary mapping.
func (d *OrderDao) FilterItems(ctx context.Context, filter OrderItemFilter, page, size int) ([]*model.OrderItem, int64, error) {
	base := d.db.WithContext(ctx).Model(&model.OrderItem{}).Scopes(filter.Scopes()...)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*model.OrderItem
	err := d.db.WithContext(ctx).
		Scopes(filter.Scopes()...).
		Preload("Product").
		Preload("User").
		Order("id DESC").
		Limit(size).
		Offset(page * size).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
