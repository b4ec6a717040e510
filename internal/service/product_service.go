package service

import (
	"context"
	"errors"
	"io"

	"github.com/venkatesh141/Ecom/internal/cache"
	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/internal/storage"
	"github.com/venkatesh141/Ecom/pkg/e"
	"github.com/venkatesh141/Ecom/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService struct {
	productDao  *dao.ProductDao
	categoryDao *dao.CategoryDao
	images      storage.ImageStore
	catalog     *cache.CatalogCache
}

func NewProductService(productDao *dao.ProductDao, categoryDao *dao.CategoryDao, images storage.ImageStore, catalog *cache.CatalogCache) *ProductService {
	return &ProductService{
		productDao:  productDao,
		categoryDao: categoryDao,
		images:      images,
		catalog:     catalog,
	}
}

// ProductInput is the create/update payload. Image is optional on update.
type ProductInput struct {
	CategoryID  int64
	Name        string
	Description string
	Price       decimal.Decimal

	ImageName        string
	ImageContentType string
	Image            io.Reader
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	if in.Name == "" || in.CategoryID == 0 {
		return nil, e.InvalidArgument("product name and category are required")
	}
	if in.Price.IsNegative() {
		return nil, e.InvalidArgument("price must not be negative")
	}
	if _, err := s.categoryDao.GetByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.NotFound(e.ERROR_CATEGORY_NOT_EXISTS, "")
		}
		return nil, e.Internal(err)
	}

	imageURL, err := s.uploadImage(ctx, in)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    imageURL,
		Price:       in.Price,
	}
	if err := s.productDao.Create(ctx, product); err != nil {
		return nil, e.Internal(err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, productID int64, in ProductInput) (*model.Product, error) {
	product, err := s.productDao.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.NotFound(e.ERROR_PRODUCT_NOT_EXISTS, "")
		}
		return nil, e.Internal(err)
	}

	if in.CategoryID != 0 {
		if _, err := s.categoryDao.GetByID(ctx, in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, e.NotFound(e.ERROR_CATEGORY_NOT_EXISTS, "")
			}
			return nil, e.Internal(err)
		}
		product.CategoryID = in.CategoryID
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Price.IsNegative() {
		return nil, e.InvalidArgument("price must not be negative")
	}
	if !in.Price.IsZero() {
		product.Price = in.Price
	}
	if in.Image != nil {
		imageURL, err := s.uploadImage(ctx, in)
		if err != nil {
			return nil, err
		}
		product.ImageURL = imageURL
	}

	product.Category = nil
	if err := s.productDao.Save(ctx, product); err != nil {
		return nil, e.Internal(err)
	}
	s.catalog.InvalidateProduct(ctx, product.ID)
	return product, nil
}

func (s *ProductService) uploadImage(ctx context.Context, in ProductInput) (string, error) {
	if in.Image == nil {
		return "", nil
	}
	if s.images == nil {
		return "", e.InvalidArgument("image upload is not configured")
	}
	url, err := s.images.SaveImage(ctx, in.ImageName, in.ImageContentType, in.Image)
	if err != nil {
		logger.Error("image upload failed", "file", in.ImageName, "err", err)
		return "", e.Internal(err)
	}
	return url, nil
}

// GetByID serves product reads through the catalog cache when enabled.
func (s *ProductService) GetByID(ctx context.Context, productID int64) (*model.Product, error) {
	if cached := s.catalog.GetProduct(ctx, productID); cached != nil {
		return cached, nil
	}

	product, err := s.productDao.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.NotFound(e.ERROR_PRODUCT_NOT_EXISTS, "")
		}
		return nil, e.Internal(err)
	}
	s.catalog.SetProduct(ctx, product)
	return product, nil
}

func (s *ProductService) GetAll(ctx context.Context) ([]*model.Product, error) {
	products, err := s.productDao.GetAll(ctx)
	if err != nil {
		return nil, e.Internal(err)
	}
	return products, nil
}

func (s *ProductService) GetByCategory(ctx context.Context, categoryID int64) ([]*model.Product, error) {
	products, err := s.productDao.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, e.Internal(err)
	}
	if len(products) == 0 {
		return nil, e.NotFound(e.ERROR_PRODUCT_NOT_EXISTS, "no products found for this category")
	}
	return products, nil
}

// Search matches products by name or description; an empty result is a
// NotFound failure, mirroring the filter contract.
func (s *ProductService) Search(ctx context.Context, value string) ([]*model.Product, error) {
	if value == "" {
		return nil, e.InvalidArgument("search value is required")
	}
	products, err := s.productDao.Search(ctx, value)
	if err != nil {
		return nil, e.Internal(err)
	}
	if len(products) == 0 {
		return nil, e.NotFound(e.ERROR_PRODUCT_NOT_EXISTS, "no products found")
	}
	return products, nil
}

func (s *ProductService) Delete(ctx context.Context, productID int64) error {
	if _, err := s.productDao.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return e.NotFound(e.ERROR_PRODUCT_NOT_EXISTS, "")
		}
		return e.Internal(err)
	}
	if err := s.productDao.Delete(ctx, productID); err != nil {
		return e.Internal(err)
	}
	s.catalog.InvalidateProduct(ctx, productID)
	return nil
}
