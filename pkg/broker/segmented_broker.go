package broker

import (
	"sync"
	"time"

	"electroworld/internal/core"
)

// Channel represents the type of event channel
type Channel string

const (
	ChannelAdmin    Channel = "admin"
	ChannelCustomer Channel = "customer"
)

// Event represents a system event
type Event struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// SegmentedBroker manages channel-based event distribution
type SegmentedBroker struct {
	// Admin channel: all clients receive all events
	adminClients map[chan Event]bool

	// Customer channels: map[order_id]map[client_channel]bool
	// Each customer only receives events for their order
	customerClients map[string]map[chan Event]bool

	mutex sync.RWMutex
}

// NewSegmentedBroker creates a new segmented broker instance
func NewSegmentedBroker() *SegmentedBroker {
	return &SegmentedBroker{
		adminClients:    make(map[chan Event]bool),
		customerClients: make(map[string]map[chan Event]bool),
	}
}

// Subscribe creates a new client channel and returns it
// For admin: id is ignored
// For customer: id is order_id
func (b *SegmentedBroker) Subscribe(channel Channel, id string) chan Event {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	clientChan := make(chan Event, 10) // Buffered to prevent blocking

	switch channel {
	case ChannelAdmin:
		b.adminClients[clientChan] = true

	case ChannelCustomer:
		if _, exists := b.customerClients[id]; !exists {
			b.customerClients[id] = make(map[chan Event]bool)
		}
		b.customerClients[id][clientChan] = true
	}

	return clientChan
}

// Unsubscribe removes a client channel
func (b *SegmentedBroker) Unsubscribe(channel Channel, id string, clientChan chan Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	switch channel {
	case ChannelAdmin:
		delete(b.adminClients, clientChan)
		close(clientChan)

	case ChannelCustomer:
		if clients, exists := b.customerClients[id]; exists {
			delete(clients, clientChan)
			if len(clients) == 0 {
				delete(b.customerClients, id)
			}
		}
		close(clientChan)
	}
}

// Publish sends an event to the appropriate channel(s)
// For admin: publishes to all admin clients
// For customer: publishes to specific order's clients
func (b *SegmentedBroker) Publish(channel Channel, id string, event Event) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	switch channel {
	case ChannelAdmin:
		for clientChan := range b.adminClients {
			select {
			case clientChan <- event:
			default:
				// Client not ready, skip to avoid blocking
			}
		}

	case ChannelCustomer:
		if clients, exists := b.customerClients[id]; exists {
			for clientChan := range clients {
				select {
				case clientChan <- event:
				default:
					// Client not ready, skip
				}
			}
		}
	}
}

// Announce pushes an order.created event to the admin dashboard and to the
// customer stream for that order. Implements the checkout hand-off.
func (b *SegmentedBroker) Announce(order *core.Order) {
	event := Event{
		Type:      "order.created",
		Timestamp: time.Now().Unix(),
		Data: map[string]any{
			"id":           order.ID,
			"order_number": order.OrderNumber,
			"customer":     order.Customer.Name,
			"total":        order.Total,
			"status":       order.Status,
		},
	}
	b.Publish(ChannelAdmin, "", event)
	b.Publish(ChannelCustomer, order.ID, event)
}

// GetStats returns current broker statistics
func (b *SegmentedBroker) GetStats() map[string]int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	customerCount := 0
	for _, clients := range b.customerClients {
		customerCount += len(clients)
	}

	return map[string]int{
		"admin_clients":    len(b.adminClients),
		"customer_clients": customerCount,
	}
}
