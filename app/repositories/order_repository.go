package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// OrderRepository handles database operations for Order and its line items.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// withDetail preloads the client and the line items with their product
// snapshots, which every order read returns.
func withDetail(db *gorm.DB) *gorm.DB {
	return db.Preload("Client").Preload("Items").Preload("Items.Product")
}

// FindByID fetches an order with client and line items.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var order models.Order
	err := r.db.Scopes(withDetail).First(&order, id).Error
	return order, err
}

// FindByClient returns one page of a client's order history, newest first.
func (r *OrderRepository) FindByClient(clientID uint, page int) ([]models.Order, Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var total int64
	if err := r.db.Model(&models.Order{}).Where("client_id = ?", clientID).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var orders []models.Order
	err := r.db.Scopes(withDetail).
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Offset(offset(page)).
		Limit(PageSize).
		Find(&orders).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return orders, newPagination(page, total), nil
}

// CreateWithReservation creates the order and decrements every line item's
// product stock in ONE transaction. Each decrement is conditional on
// `stock >= quantity` at write time, so two concurrent checkouts can never
// overdraw the same product: the loser's guarded UPDATE touches zero rows,
// the whole transaction rolls back, and the order is never created.
// Availability is recomputed as newStock > 0 in the same statement.
func (r *OrderRepository) CreateWithReservation(clientID uint, total float64, items []models.OrderItem) (models.Order, error) {
	defer metrics.ObserveDBQuery("insert", time.Now())

	var orderID uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", items[i].ProductID, items[i].Quantity).
				Updates(map[string]interface{}{
					"stock":        gorm.Expr("stock - ?", items[i].Quantity),
					"availability": gorm.Expr("stock - ? > 0", items[i].Quantity),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.ErrInsufficientStock
			}
		}

		order := models.Order{ClientID: clientID, Status: models.OrderPending, Total: total, Items: items}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	// Re-read with preloads so the returned line items carry the
	// post-decrement product snapshots.
	return r.FindByID(orderID)
}

// UpdateStatus sets the order status and returns the refreshed order.
func (r *OrderRepository) UpdateStatus(id uint, status string) (models.Order, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return models.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// IsNotFound reports whether err is the store's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
