// Package jobs holds the background jobs dispatched through pkg/queue.
package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/mail"
	"github.com/shashiranjanraj/storefront/pkg/queue"
)

// OrderReceiptType is the registry name for OrderReceiptJob.
const OrderReceiptType = "*jobs.OrderReceiptJob"

// RegisterAll registers every job type with the queue. Call once at
// boot, before workers start.
func RegisterAll() {
	queue.Register(OrderReceiptType, func() queue.Job { return &OrderReceiptJob{} })
}

// OrderReceiptJob emails an order confirmation to the customer.
type OrderReceiptJob struct {
	OrderID uint    `json:"orderId"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
}

func (j *OrderReceiptJob) Handle() error {
	if !mail.Configured() {
		// No SMTP in this environment, the log line is the receipt.
		logger.Info("order receipt (mail disabled)",
			"order_id", j.OrderID, "email", j.Email, "total", j.Total)
		return nil
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for your order #%d. We charged <b>%.2f</b> and will let you know when it ships.</p>",
		j.Name, j.OrderID, j.Total,
	)

	return mail.To(j.Email).
		Subject(fmt.Sprintf("Order #%d confirmed", j.OrderID)).
		Body(body).
		Send()
}
