package services

import (
	"errors"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// OrderService owns order placement and lifecycle.
type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
	strict   bool // reject illegal status transitions
}

// NewOrderService builds the order service. strict controls status
// transition enforcement (config ORDER_STRICT_STATUS).
func NewOrderService(orders *repositories.OrderRepository, products *repositories.ProductRepository, strict bool) *OrderService {
	return &OrderService{orders: orders, products: products, strict: strict}
}

// OrderLine is one requested (product, quantity) pairing.
type OrderLine struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity"  validate:"required"`
}

// OrderInput is the checkout payload.
type OrderInput struct {
	Client   uint        `json:"client"   validate:"required"`
	Products []OrderLine `json:"products" validate:"required"`
}

// GetByID fetches an order with its client summary and line items.
func (s *OrderService) GetByID(id uint) (models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.Order{}, apperr.NotFoundWrap("order", err)
		}
		return models.Order{}, apperr.Internal("look up order", err)
	}
	return order, nil
}

// HistoryByClient returns one page of a client's orders, newest first.
func (s *OrderService) HistoryByClient(clientID uint, page int) ([]models.Order, repositories.Pagination, error) {
	if page <= 0 {
		return nil, repositories.Pagination{}, apperr.ErrInvalidPage
	}

	orders, pagination, err := s.orders.FindByClient(clientID, page)
	if err != nil {
		return nil, repositories.Pagination{}, apperr.Internal("list orders", err)
	}
	return orders, pagination, nil
}

// Create places an order.
//
// Phase 1 validates every line item (product exists, quantity positive,
// stock sufficient) so the whole request is rejected before anything is
// written. Phase 2 runs order creation and all stock decrements in one
// transaction with conditional decrements, so a concurrent checkout racing
// past phase 1 still cannot overdraw stock — the transaction rolls back and
// the order is rejected.
func (s *OrderService) Create(input OrderInput) (models.Order, error) {
	if len(input.Products) == 0 {
		return models.Order{}, apperr.Domain("order must contain at least one product")
	}

	snapshots := make(map[uint]models.Product, len(input.Products))
	for _, line := range input.Products {
		product, err := s.products.FindByID(line.ProductID)
		if err != nil {
			if repositories.IsNotFound(err) {
				metrics.OrdersRejected.WithLabelValues("unknown_product").Inc()
				return models.Order{}, apperr.NotFoundWrap("product", err)
			}
			return models.Order{}, apperr.Internal("look up product", err)
		}
		if line.Quantity <= 0 {
			metrics.OrdersRejected.WithLabelValues("invalid_quantity").Inc()
			return models.Order{}, apperr.ErrInvalidQuantity
		}
		if product.Stock-line.Quantity < 0 {
			metrics.OrdersRejected.WithLabelValues("insufficient_stock").Inc()
			return models.Order{}, apperr.ErrInsufficientStock
		}
		snapshots[line.ProductID] = product
	}

	items := collection.Map(input.Products, func(line OrderLine) models.OrderItem {
		return models.OrderItem{ProductID: line.ProductID, Quantity: line.Quantity}
	})
	total := collection.Sum(input.Products, func(line OrderLine) float64 {
		return snapshots[line.ProductID].Price * float64(line.Quantity)
	})

	order, err := s.orders.CreateWithReservation(input.Client, total, items)
	if err != nil {
		if errors.Is(err, apperr.ErrInsufficientStock) {
			// Lost the race against a concurrent checkout.
			metrics.OrdersRejected.WithLabelValues("insufficient_stock").Inc()
			return models.Order{}, apperr.ErrInsufficientStock
		}
		return models.Order{}, apperr.Internal("create order", err)
	}

	// The cached product snapshots are stale after the decrements.
	keys := collection.Map(input.Products, func(line OrderLine) string {
		return productCacheKey(line.ProductID)
	})
	_ = cache.Del(keys...)

	metrics.OrdersPlaced.Inc()
	event.Fire(event.OrderPlaced, order)
	return order, nil
}

// UpdateStatus moves an order to the given status. In strict mode the
// transition table in app/models is enforced; otherwise any known status is
// applied unconditionally (legacy behaviour).
func (s *OrderService) UpdateStatus(id uint, status string) (models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return models.Order{}, apperr.Domainf("unknown order status: %s", status)
	}

	if s.strict {
		current, err := s.GetByID(id)
		if err != nil {
			return models.Order{}, err
		}
		if !models.CanTransition(current.Status, status) {
			return models.Order{}, apperr.ErrInvalidTransition
		}
	}

	order, err := s.orders.UpdateStatus(id, status)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.Order{}, apperr.NotFoundWrap("order", err)
		}
		return models.Order{}, apperr.Internal("update order status", err)
	}
	return order, nil
}
