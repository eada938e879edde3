package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// OrderController serves the order lifecycle endpoints.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Get handles GET /order/{id}.
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := c.service.GetByID(id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, order)
}

// History handles GET /order/history/{id} and /order/history/{id}/{page}.
func (c *OrderController) History(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid client id")
		return
	}

	orders, pagination, err := c.service.HistoryByClient(id, pageParam(r))
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, orders, pagination)
}

// Create handles POST /order.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var body services.OrderInput
	if errs, err := bind.JSON(r, &body); err != nil {
		badRequest(w, err)
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Create(body)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, order)
}

// UpdateStatus builds the handler behind the PUT /order/process,
// /order/deliver, /order/complete and /order/cancel routes. Each route
// pins the target status at registration time.
func (c *OrderController) UpdateStatus(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			response.Error(w, http.StatusBadRequest, "invalid order id")
			return
		}

		order, err := c.service.UpdateStatus(id, status)
		if err != nil {
			fail(w, r, err)
			return
		}

		response.Success(w, order)
	}
}
