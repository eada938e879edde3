package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/event"
)

func newOrderService(t *testing.T, strict bool) (*services.OrderService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := services.NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewProductRepository(db),
		strict,
	)
	return svc, db
}

func seedClient(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{
		Name:     "Buyer",
		Email:    "buyer@example.com",
		Password: "irrelevant-hash",
		Role:     models.RoleCustomer,
		Status:   models.StatusActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	event.Flush()
	svc, db := newOrderService(t, true)
	client := seedClient(t, db)
	keyboard := seedProduct(t, db, "Keyboard", 90, 5)
	mouse := seedProduct(t, db, "Mouse", 30, 2)

	order, err := svc.Create(services.OrderInput{
		Client: client.ID,
		Products: []services.OrderLine{
			{ProductID: keyboard.ID, Quantity: 2},
			{ProductID: mouse.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, 2*90.0+2*30.0, order.Total)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, client.ID, order.Client.ID)

	var kb, ms models.Product
	require.NoError(t, db.First(&kb, keyboard.ID).Error)
	require.NoError(t, db.First(&ms, mouse.ID).Error)

	assert.Equal(t, 3, kb.Stock)
	assert.True(t, kb.Availability)
	assert.Equal(t, 0, ms.Stock)
	assert.False(t, ms.Availability, "availability recomputes when stock hits zero")
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	event.Flush()
	svc, db := newOrderService(t, true)
	client := seedClient(t, db)
	keyboard := seedProduct(t, db, "Keyboard", 90, 5)
	mouse := seedProduct(t, db, "Mouse", 30, 1)

	_, err := svc.Create(services.OrderInput{
		Client: client.ID,
		Products: []services.OrderLine{
			{ProductID: keyboard.ID, Quantity: 2},
			{ProductID: mouse.ID, Quantity: 5},
		},
	})
	if !errors.Is(err, apperr.ErrInsufficientStock) {
		t.Fatalf("got %v, want ErrInsufficientStock", err)
	}

	// The keyboard line must not have been decremented.
	var kb models.Product
	require.NoError(t, db.First(&kb, keyboard.ID).Error)
	assert.Equal(t, 5, kb.Stock)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders, "rejected checkout must not leave an order behind")
}

func TestCreateOrderRejectsBadLines(t *testing.T) {
	event.Flush()
	svc, db := newOrderService(t, true)
	client := seedClient(t, db)
	keyboard := seedProduct(t, db, "Keyboard", 90, 5)

	_, err := svc.Create(services.OrderInput{Client: client.ID})
	assert.Equal(t, apperr.KindDomain, apperr.KindOf(err))

	_, err = svc.Create(services.OrderInput{
		Client:   client.ID,
		Products: []services.OrderLine{{ProductID: keyboard.ID, Quantity: 0}},
	})
	if !errors.Is(err, apperr.ErrInvalidQuantity) {
		t.Fatalf("got %v, want ErrInvalidQuantity", err)
	}

	_, err = svc.Create(services.OrderInput{
		Client:   client.ID,
		Products: []services.OrderLine{{ProductID: 9999, Quantity: 1}},
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateOrderFiresPlacedEvent(t *testing.T) {
	event.Flush()
	t.Cleanup(event.Flush)

	var got models.Order
	event.Listen(event.OrderPlaced, func(payload interface{}) {
		got, _ = payload.(models.Order)
	})

	svc, db := newOrderService(t, true)
	client := seedClient(t, db)
	keyboard := seedProduct(t, db, "Keyboard", 90, 5)

	order, err := svc.Create(services.OrderInput{
		Client:   client.ID,
		Products: []services.OrderLine{{ProductID: keyboard.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, "buyer@example.com", got.Client.Email)
}

func TestOrderHistory(t *testing.T) {
	event.Flush()
	svc, db := newOrderService(t, true)
	client := seedClient(t, db)
	keyboard := seedProduct(t, db, "Keyboard", 90, 100)

	for i := 0; i < 12; i++ {
		_, err := svc.Create(services.OrderInput{
			Client:   client.ID,
			Products: []services.OrderLine{{ProductID: keyboard.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	page1, pagination, err := svc.HistoryByClient(client.ID, 1)
	require.NoError(t, err)
	assert.Len(t, page1, repositories.PageSize)
	assert.Equal(t, int64(12), pagination.Total)
	assert.Equal(t, 2, pagination.TotalPages)

	page2, _, err := svc.HistoryByClient(client.ID, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 2)

	_, _, err = svc.HistoryByClient(client.ID, 0)
	if !errors.Is(err, apperr.ErrInvalidPage) {
		t.Fatalf("got %v, want ErrInvalidPage", err)
	}

	// A client with no orders gets an empty page, not an error.
	other := models.User{Name: "Other", Email: "other@example.com", Password: "x"}
	require.NoError(t, db.Create(&other).Error)
	empty, _, err := svc.HistoryByClient(other.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func placeOrder(t *testing.T, svc *services.OrderService, clientID, productID uint) models.Order {
	t.Helper()

	order, err := svc.Create(services.OrderInput{
		Client:   clientID,
		Products: []services.OrderLine{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	return order
}

func TestUpdateStatusStrict(t *testing.T) {
	event.Flush()
	svc, db := newOrderService(t, true)
	client := seedClient(t, db)
	keyboard := seedProduct(t, db, "Keyboard", 90, 100)

	order := placeOrder(t, svc, client.ID, keyboard.ID)

	// PENDING cannot jump straight to DELIVERING.
	_, err := svc.UpdateStatus(order.ID, models.OrderDelivering)
	if !errors.Is(err, apperr.ErrInvalidTransition) {
		t.Fatalf("got %v, want ErrInvalidTransition", err)
	}

	for _, status := range []string{
		models.OrderProcessing,
		models.OrderDelivering,
		models.OrderCompleted,
	} {
		updated, err := svc.UpdateStatus(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// COMPLETED is terminal.
	_, err = svc.UpdateStatus(order.ID, models.OrderCanceled)
	if !errors.Is(err, apperr.ErrInvalidTransition) {
		t.Fatalf("got %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusLenient(t *testing.T) {
	event.Flush()
	svc, db := newOrderService(t, false)
	client := seedClient(t, db)
	keyboard := seedProduct(t, db, "Keyboard", 90, 100)

	order := placeOrder(t, svc, client.ID, keyboard.ID)

	// Lenient mode applies any known status unconditionally.
	updated, err := svc.UpdateStatus(order.ID, models.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, updated.Status)

	// Unknown statuses are still rejected.
	_, err = svc.UpdateStatus(order.ID, "SHIPPED")
	assert.Equal(t, apperr.KindDomain, apperr.KindOf(err))
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t, false)

	_, err := svc.UpdateStatus(9999, models.OrderProcessing)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetOrderByID(t *testing.T) {
	event.Flush()
	svc, db := newOrderService(t, true)
	client := seedClient(t, db)
	keyboard := seedProduct(t, db, "Keyboard", 90, 100)

	placed := placeOrder(t, svc, client.ID, keyboard.ID)

	order, err := svc.GetByID(placed.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Keyboard", order.Items[0].Product.Name)

	_, err = svc.GetByID(9999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
