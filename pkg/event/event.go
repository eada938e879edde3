// Package event provides a simple in-process event dispatcher.
//
// The order service fires OrderPlaced after a successful checkout so
// logging and metrics stay out of the placement flow.
package event

import (
	"sync"
)

// Event names fired by the application.
const (
	OrderPlaced       = "order.placed"
	UserRegistered    = "user.registered"
	ProductSoftDelete = "product.soft_deleted"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
