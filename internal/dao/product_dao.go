package dao

import (
	"context"

	"github.com/venkatesh141/Ecom/internal/model"

	"gorm.io/gorm"
)

type ProductDao struct {
	db *gorm.DB
}

func NewProductDao(db *gorm.DB) *ProductDao {
	return &ProductDao{db: db}
}

func (dao *ProductDao) Create(ctx context.Context, product *model.Product) error {
	return dao.db.WithContext(ctx).Create(product).Error
}

func (dao *ProductDao) Save(ctx context.Context, product *model.Product) error {
	return dao.db.WithContext(ctx).Save(product).Error
}

func (dao *ProductDao) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := dao.db.WithContext(ctx).Preload("Category").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (dao *ProductDao) GetAll(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := dao.db.WithContext(ctx).Order("id DESC").Find(&products).Error
	return products, err
}

func (dao *ProductDao) GetByCategoryID(ctx context.Context, categoryID int64) ([]*model.Product, error) {
	var products []*model.Product
	err := dao.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id DESC").Find(&products).Error
	return products, err
}

// Search matches name or description against the given value.
func (dao *ProductDao) Search(ctx context.Context, value string) ([]*model.Product, error) {
	var products []*model.Product
	pattern := "%" + value + "%"
	err := dao.db.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ?", pattern, pattern).
		Order("id DESC").
		Find(&products).Error
	return products, err
}

func (dao *ProductDao) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}
