package models

import "gorm.io/gorm"

// Order statuses. An order starts as PENDING and moves through PROCESSING and
// DELIVERING to COMPLETED; CANCELED is reachable from any non-terminal state.
const (
	OrderPending    = "PENDING"
	OrderProcessing = "PROCESSING"
	OrderDelivering = "DELIVERING"
	OrderCompleted  = "COMPLETED"
	OrderCanceled   = "CANCELED"
)

// orderTransitions is the allowed-transition table used when strict status
// enforcement is on.
var orderTransitions = map[string][]string{
	OrderPending:    {OrderProcessing, OrderCanceled},
	OrderProcessing: {OrderDelivering, OrderCanceled},
	OrderDelivering: {OrderCompleted, OrderCanceled},
	OrderCompleted:  {},
	OrderCanceled:   {},
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is an order placed by a client, with its line items.
type Order struct {
	gorm.Model
	ClientID uint        `gorm:"not null;index"          json:"client_id"`
	Client   User        `json:"client"`
	Status   string      `gorm:"size:50;default:PENDING" json:"status"`
	Total    float64     `json:"total"` // sum of price × quantity at placement time
	Items    []OrderItem `json:"items"`
}

// OrderItem is one (product, quantity) pairing within an order. The embedded
// Product carries the snapshot returned to clients.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `json:"product"`
	Quantity  int     `gorm:"not null"       json:"quantity"`
}
