package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// shopFront is the canonical listing filter: in the shop-front view only
// available, non-soft-deleted products appear. Every listing query goes
// through this scope so the filters never diverge across call sites.
func shopFront(db *gorm.DB) *gorm.DB {
	return db.Where("availability = ? AND status = ?", true, true)
}

// FindByID looks up a product by primary key, soft-deleted rows included —
// historical order items must stay resolvable.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var product models.Product
	err := r.db.First(&product, id).Error
	return product, err
}

// ListAvailable returns one page of the shop-front listing, ordered by
// primary key for a stable page walk.
func (r *ProductRepository) ListAvailable(page int) ([]models.Product, Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var total int64
	if err := r.db.Model(&models.Product{}).Scopes(shopFront).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var products []models.Product
	err := r.db.Scopes(shopFront).
		Order("id asc").
		Offset(offset(page)).
		Limit(PageSize).
		Find(&products).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return products, newPagination(page, total), nil
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(product).Error
}

// Save persists changes to an existing product.
func (r *ProductRepository) Save(product *models.Product) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(product).Error
}

// SoftDelete flips the status marker off. The row stays; repeating the call
// is a harmless no-op.
func (r *ProductRepository) SoftDelete(id uint) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Model(&models.Product{}).Where("id = ?", id).
		Update("status", false).Error
}

// ReconcileAvailability realigns the availability flag with the actual
// stock level across the whole catalogue. Checkout keeps the flag
// consistent already; this is the periodic safety net for rows touched
// outside the API (manual SQL, imports). Returns the number of rows
// corrected.
func (r *ProductRepository) ReconcileAvailability() (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.Model(&models.Product{}).
		Where("availability <> (stock > 0)").
		Update("availability", gorm.Expr("stock > 0"))
	return res.RowsAffected, res.Error
}
