package service

import (
	"context"
	"errors"

	"github.com/venkatesh141/Ecom/internal/cache"
	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"

	"gorm.io/gorm"
)

type CategoryService struct {
	categoryDao *dao.CategoryDao
	catalog     *cache.CatalogCache
}

func NewCategoryService(categoryDao *dao.CategoryDao, catalog *cache.CatalogCache) *CategoryService {
	return &CategoryService{categoryDao: categoryDao, catalog: catalog}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, e.InvalidArgument("category name is required")
	}
	category := &model.Category{Name: name}
	if err := s.categoryDao.Create(ctx, category); err != nil {
		return nil, e.Internal(err)
	}
	s.catalog.InvalidateCategories(ctx)
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*model.Category, error) {
	if name == "" {
		return nil, e.InvalidArgument("category name is required")
	}
	if _, err := s.categoryDao.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.NotFound(e.ERROR_CATEGORY_NOT_EXISTS, "")
		}
		return nil, e.Internal(err)
	}
	if err := s.categoryDao.UpdateName(ctx, id, name); err != nil {
		return nil, e.Internal(err)
	}
	s.catalog.InvalidateCategories(ctx)

	category, err := s.categoryDao.GetByID(ctx, id)
	if err != nil {
		return nil, e.Internal(err)
	}
	return category, nil
}

// GetAll serves the category list through the catalog cache when enabled.
func (s *CategoryService) GetAll(ctx context.Context) ([]*model.Category, error) {
	if cached := s.catalog.GetCategories(ctx); cached != nil {
		return cached, nil
	}

	categories, err := s.categoryDao.GetAll(ctx)
	if err != nil {
		return nil, e.Internal(err)
	}
	s.catalog.SetCategories(ctx, categories)
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categoryDao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.NotFound(e.ERROR_CATEGORY_NOT_EXISTS, "")
		}
		return nil, e.Internal(err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categoryDao.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return e.NotFound(e.ERROR_CATEGORY_NOT_EXISTS, "")
		}
		return e.Internal(err)
	}
	if err := s.categoryDao.Delete(ctx, id); err != nil {
		return e.Internal(err)
	}
	s.catalog.InvalidateCategories(ctx)
	return nil
}
