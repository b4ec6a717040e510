package service

import (
	"context"
	"testing"

	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogServices(t *testing.T) (*CategoryService, *ProductService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	categoryDao := dao.NewCategoryDao(db)
	// nil cache and nil image store: both are optional collaborators.
	categorySvc := NewCategoryService(categoryDao, nil)
	productSvc := NewProductService(dao.NewProductDao(db), categoryDao, nil, nil)
	return categorySvc, productSvc, db
}

func TestCategoryCRUD(t *testing.T) {
	svc, _, _ := newCatalogServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Books")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := svc.Update(ctx, created.ID, "Comics")
	require.NoError(t, err)
	assert.Equal(t, "Comics", updated.Name)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.Equal(t, 404, e.AsAppError(err).Status)

	_, err = svc.Update(ctx, 424242, "Nope")
	assert.Equal(t, 404, e.AsAppError(err).Status)
}

func TestProductCreateAndQueries(t *testing.T) {
	categorySvc, productSvc, _ := newCatalogServices(t)
	ctx := context.Background()

	category, err := categorySvc.Create(ctx, "Electronics")
	require.NoError(t, err)

	created, err := productSvc.Create(ctx, ProductInput{
		CategoryID:  category.ID,
		Name:        "Mechanical Keyboard",
		Description: "tenkeyless",
		Price:       decimal.RequireFromString("79.90"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := productSvc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("79.90")))

	byCategory, err := productSvc.GetByCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	found, err := productSvc.Search(ctx, "tenkeyless")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = productSvc.Search(ctx, "no-such-product")
	assert.Equal(t, 404, e.AsAppError(err).Status)

	_, err = productSvc.Create(ctx, ProductInput{
		CategoryID: 424242,
		Name:       "Orphan",
		Price:      decimal.RequireFromString("1.00"),
	})
	assert.Equal(t, 404, e.AsAppError(err).Status)

	_, err = productSvc.Create(ctx, ProductInput{
		CategoryID: category.ID,
		Name:       "Negative",
		Price:      decimal.RequireFromString("-1.00"),
	})
	assert.Equal(t, 400, e.AsAppError(err).Status)
}

func TestProductUpdateAndDelete(t *testing.T) {
	categorySvc, productSvc, db := newCatalogServices(t)
	ctx := context.Background()

	category, err := categorySvc.Create(ctx, "Electronics")
	require.NoError(t, err)

	created, err := productSvc.Create(ctx, ProductInput{
		CategoryID: category.ID,
		Name:       "Mouse",
		Price:      decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	updated, err := productSvc.Update(ctx, created.ID, ProductInput{
		Name:  "Gaming Mouse",
		Price: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Gaming Mouse", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("15.00")))
	// Category untouched when not supplied.
	assert.Equal(t, category.ID, updated.CategoryID)

	require.NoError(t, productSvc.Delete(ctx, created.ID))

	var count int64
	require.NoError(t, db.Model(&model.Product{}).Count(&count).Error)
	assert.Zero(t, count)

	err = productSvc.Delete(ctx, created.ID)
	assert.Equal(t, 404, e.AsAppError(err).Status)
}
