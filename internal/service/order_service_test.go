package service

import (
	"context"
	"testing"
	"time"

	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewOrderService(dao.NewOrderDao(db), dao.NewProductDao(db), nil), db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price string) *model.Product {
	t.Helper()
	category := &model.Category{Name: "Electronics"}
	require.NoError(t, db.Create(category).Error)

	p := &model.Product{
		CategoryID: category.ID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestPlaceOrder_TotalIsSumOfItemPrices(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	p1 := seedProduct(t, db, "Keyboard", "10.00")
	p2 := seedProduct(t, db, "Mouse", "5.50")

	order, err := svc.PlaceOrder(ctx, 1, []LineItem{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 3},
	}, nil)
	require.NoError(t, err)

	// 10.00*2 + 5.50*3 = 36.50
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("36.50")),
		"got total %s", order.TotalPrice)
	require.Len(t, order.Items, 2)
	for _, item := range order.Items {
		assert.Equal(t, model.OrderStatusPending, item.Status)
		assert.Equal(t, order.ID, item.OrderID)
		assert.Equal(t, int64(1), item.UserID)
	}
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, order.Items[1].Price.Equal(decimal.RequireFromString("16.50")))
}

func TestPlaceOrder_ClientTotalOverride(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	p := seedProduct(t, db, "Keyboard", "10.00")

	override := decimal.RequireFromString("99.99")
	order, err := svc.PlaceOrder(ctx, 1, []LineItem{{ProductID: p.ID, Quantity: 2}}, &override)
	require.NoError(t, err)
	assert.True(t, order.TotalPrice.Equal(override))

	// A non-positive override falls back to the computed sum.
	zero := decimal.Zero
	order, err = svc.PlaceOrder(ctx, 1, []LineItem{{ProductID: p.ID, Quantity: 2}}, &zero)
	require.NoError(t, err)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("20.00")))
}

func TestPlaceOrder_UnknownProductPersistsNothing(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	p := seedProduct(t, db, "Keyboard", "10.00")

	_, err := svc.PlaceOrder(ctx, 1, []LineItem{
		{ProductID: p.ID, Quantity: 1},
		{ProductID: 424242, Quantity: 1},
	}, nil)
	require.Error(t, err)
	ae := e.AsAppError(err)
	assert.Equal(t, 404, ae.Status)

	var orders, items int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&model.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestPlaceOrder_RejectsBadInput(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, 1, nil, nil)
	assert.Equal(t, 400, e.AsAppError(err).Status)

	p := seedProduct(t, db, "Keyboard", "10.00")
	_, err = svc.PlaceOrder(ctx, 1, []LineItem{{ProductID: p.ID, Quantity: 0}}, nil)
	assert.Equal(t, 400, e.AsAppError(err).Status)
}

func TestPlaceOrder_ItemPriceFrozen(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	p := seedProduct(t, db, "Keyboard", "10.00")
	order, err := svc.PlaceOrder(ctx, 1, []LineItem{{ProductID: p.ID, Quantity: 2}}, nil)
	require.NoError(t, err)

	// Raising the product price later must not touch the stored item price.
	require.NoError(t, db.Model(&model.Product{}).Where("id = ?", p.ID).
		Update("price", decimal.RequireFromString("100.00")).Error)

	var item model.OrderItem
	require.NoError(t, db.First(&item, order.Items[0].ID).Error)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("20.00")))
}

func TestUpdateItemStatus(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	p := seedProduct(t, db, "Keyboard", "10.00")
	order, err := svc.PlaceOrder(ctx, 5, []LineItem{{ProductID: p.ID, Quantity: 1}}, nil)
	require.NoError(t, err)
	itemID := order.Items[0].ID

	// Case-insensitive match against the enumerated set.
	require.NoError(t, svc.UpdateItemStatus(ctx, itemID, "delivered"))

	var item model.OrderItem
	require.NoError(t, db.First(&item, itemID).Error)
	assert.Equal(t, model.OrderStatusDelivered, item.Status)

	// Unknown status leaves the item unchanged.
	err = svc.UpdateItemStatus(ctx, itemID, "TELEPORTED")
	assert.Equal(t, 400, e.AsAppError(err).Status)
	require.NoError(t, db.First(&item, itemID).Error)
	assert.Equal(t, model.OrderStatusDelivered, item.Status)

	err = svc.UpdateItemStatus(ctx, 424242, "PENDING")
	assert.Equal(t, 404, e.AsAppError(err).Status)
}

func seedItem(t *testing.T, db *gorm.DB, status model.OrderStatus, createdAt time.Time) *model.OrderItem {
	t.Helper()
	item := &model.OrderItem{
		OrderID:   1,
		ProductID: 1,
		UserID:    1,
		Quantity:  1,
		Price:     decimal.RequireFromString("1.00"),
		Status:    status,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestFilterItems_NoPredicatesReturnsAllNewestFirst(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 5; i++ {
		seedItem(t, db, model.OrderStatusPending, now)
	}

	page, err := svc.FilterItems(ctx, OrderItemFilterParams{Page: 0, Size: 1000})
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	assert.Equal(t, int64(5), page.TotalElement)
	assert.Equal(t, 1, page.TotalPage)
	for i := 1; i < len(page.Items); i++ {
		assert.Greater(t, page.Items[i-1].ID, page.Items[i].ID)
	}
}

func TestFilterItems_StatusAndDateRange(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	jan := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)

	inRange := seedItem(t, db, model.OrderStatusPending, jan)
	seedItem(t, db, model.OrderStatusDelivered, jan)
	seedItem(t, db, model.OrderStatusPending, feb)

	status := model.OrderStatusPending
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC)

	page, err := svc.FilterItems(ctx, OrderItemFilterParams{
		Status:    &status,
		StartDate: &start,
		EndDate:   &end,
		Page:      0,
		Size:      10,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, inRange.ID, page.Items[0].ID)
}

func TestFilterItems_OneSidedDateRange(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	jan := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)
	seedItem(t, db, model.OrderStatusPending, jan)
	seedItem(t, db, model.OrderStatusPending, feb)

	cut := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	page, err := svc.FilterItems(ctx, OrderItemFilterParams{StartDate: &cut, Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	page, err = svc.FilterItems(ctx, OrderItemFilterParams{EndDate: &cut, Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestFilterItems_ByItemID(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	seedItem(t, db, model.OrderStatusPending, time.Now())
	target := seedItem(t, db, model.OrderStatusPending, time.Now())

	page, err := svc.FilterItems(ctx, OrderItemFilterParams{ItemID: &target.ID, Page: 0, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, target.ID, page.Items[0].ID)
}

func TestFilterItems_EmptyPageIsNotFound(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	_, err := svc.FilterItems(ctx, OrderItemFilterParams{Page: 0, Size: 10})
	require.Error(t, err)
	assert.Equal(t, 404, e.AsAppError(err).Status)
}

func TestFilterItems_Pagination(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		seedItem(t, db, model.OrderStatusPending, time.Now())
	}

	page, err := svc.FilterItems(ctx, OrderItemFilterParams{Page: 1, Size: 3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, int64(7), page.TotalElement)
	assert.Equal(t, 3, page.TotalPage)

	_, err = svc.FilterItems(ctx, OrderItemFilterParams{Page: -1, Size: 3})
	assert.Equal(t, 400, e.AsAppError(err).Status)
	_, err = svc.FilterItems(ctx, OrderItemFilterParams{Page: 0, Size: 0})
	assert.Equal(t, 400, e.AsAppError(err).Status)
}

func TestDeleteOrder_RemovesOwnedItems(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	p := seedProduct(t, db, "Keyboard", "10.00")
	order, err := svc.PlaceOrder(ctx, 1, []LineItem{{ProductID: p.ID, Quantity: 2}}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	var orders, items int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&model.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)

	err = svc.DeleteOrder(ctx, order.ID)
	assert.Equal(t, 404, e.AsAppError(err).Status)
}
