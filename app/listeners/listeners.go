// Package listeners wires the event bus to side effects: receipt
// emails, audit logging. Everything here runs off the request path.
package listeners

import (
	"github.com/shashiranjanraj/storefront/app/jobs"
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/queue"
	"github.com/shashiranjanraj/storefront/pkg/workerpool"
)

// Register attaches all listeners. Slow work is pushed through pool so
// a burst of events never blocks the firing request; when the pool is
// saturated the side effect is dropped with a warning, the order itself
// is already committed.
func Register(pool *workerpool.Pool) {
	event.Listen(event.OrderPlaced, func(payload interface{}) {
		order, ok := payload.(models.Order)
		if !ok {
			return
		}

		err := pool.Submit(func() {
			job := &jobs.OrderReceiptJob{
				OrderID: order.ID,
				Email:   order.Client.Email,
				Name:    order.Client.Name,
				Total:   order.Total,
			}
			if err := queue.Dispatch(job); err != nil {
				logger.Error("dispatch order receipt", "order_id", order.ID, "error", err)
			}
		})
		if err != nil {
			logger.Warn("receipt dropped, worker pool saturated", "order_id", order.ID)
		}
	})

	event.Listen(event.UserRegistered, func(payload interface{}) {
		if user, ok := payload.(models.User); ok {
			logger.Info("user registered", "user_id", user.ID, "role", user.Role)
		}
	})

	event.Listen(event.ProductSoftDelete, func(payload interface{}) {
		if id, ok := payload.(uint); ok {
			logger.Info("product soft-deleted", "product_id", id)
		}
	})
}
