package services

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/event"
)

// productCacheTTL bounds staleness of the product-by-id read cache. Writes
// (including stock decrements at checkout) invalidate eagerly.
const productCacheTTL = time.Minute

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// ProductService owns the product catalogue.
type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService(products *repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// ProductInput is the new-product payload.
type ProductInput struct {
	Name         string  `json:"name"         validate:"required,max=255"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"        validate:"required"`
	Stock        *int    `json:"stock"`
	Availability bool    `json:"availability"`
}

// UpdateProductInput is a partial product update; nil fields are left alone.
type UpdateProductInput struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Stock        *int     `json:"stock"`
	Availability *bool    `json:"availability"`
}

// Create validates and persists a new product.
func (s *ProductService) Create(input ProductInput) (models.Product, error) {
	if input.Price <= 0 {
		return models.Product{}, apperr.Domainf("invalid price value: %v", input.Price)
	}

	stock := 0
	if input.Stock != nil {
		if *input.Stock < 0 {
			return models.Product{}, apperr.Domainf("invalid stock value: %d", *input.Stock)
		}
		stock = *input.Stock
	}

	product := models.Product{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Stock:        stock,
		Availability: input.Availability,
		Status:       true,
	}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, apperr.Internal("create product", err)
	}
	return product, nil
}

// ListAvailable returns one shop-front page. Page defaults are the
// controller's job; here anything below 1 is rejected outright.
func (s *ProductService) ListAvailable(page int) ([]models.Product, repositories.Pagination, error) {
	if page <= 0 {
		return nil, repositories.Pagination{}, apperr.ErrInvalidPage
	}

	products, pagination, err := s.products.ListAvailable(page)
	if err != nil {
		return nil, repositories.Pagination{}, apperr.Internal("list products", err)
	}
	return products, pagination, nil
}

// GetByID fetches a product, serving repeated reads from the cache.
func (s *ProductService) GetByID(id uint) (models.Product, error) {
	var cached models.Product
	if cache.Get(productCacheKey(id), &cached) {
		return cached, nil
	}

	product, err := s.products.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.Product{}, apperr.NotFoundWrap("product", err)
		}
		return models.Product{}, apperr.Internal("look up product", err)
	}

	_ = cache.Set(productCacheKey(id), product, productCacheTTL)
	return product, nil
}

// Update applies a partial product edit with the same field rules as Create.
func (s *ProductService) Update(id uint, input UpdateProductInput) (models.Product, error) {
	if input.Price != nil && *input.Price <= 0 {
		return models.Product{}, apperr.Domainf("invalid price value: %v", *input.Price)
	}
	if input.Stock != nil && *input.Stock < 0 {
		return models.Product{}, apperr.Domainf("invalid stock value: %d", *input.Stock)
	}

	product, err := s.products.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.Product{}, apperr.NotFoundWrap("product", err)
		}
		return models.Product{}, apperr.Internal("look up product", err)
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Availability != nil {
		product.Availability = *input.Availability
	}

	if err := s.products.Save(&product); err != nil {
		return models.Product{}, apperr.Internal("update product", err)
	}

	_ = cache.Del(productCacheKey(id))
	return product, nil
}

// Delete soft-deletes a product. Deleting an already-deleted product is a
// no-op, not an error.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.products.FindByID(id); err != nil {
		if repositories.IsNotFound(err) {
			return apperr.NotFoundWrap("product", err)
		}
		return apperr.Internal("look up product", err)
	}

	if err := s.products.SoftDelete(id); err != nil {
		return apperr.Internal("delete product", err)
	}

	_ = cache.Del(productCacheKey(id))
	event.Fire(event.ProductSoftDelete, id)
	return nil
}
