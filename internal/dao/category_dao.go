package dao

import (
	"context"

	"github.com/venkatesh141/Ecom/internal/model"

	"gorm.io/gorm"
)

type CategoryDao struct {
	db *gorm.DB
}

func NewCategoryDao(db *gorm.DB) *CategoryDao {
	return &CategoryDao{db: db}
}

func (dao *CategoryDao) Create(ctx context.Context, category *model.Category) error {
	return dao.db.WithContext(ctx).Create(category).Error
}

func (dao *CategoryDao) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	err := dao.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (dao *CategoryDao) GetAll(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := dao.db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}

func (dao *CategoryDao) UpdateName(ctx context.Context, id int64, name string) error {
	return dao.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Update("name", name).Error
}

func (dao *CategoryDao) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}
