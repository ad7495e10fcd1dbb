package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"electroworld/internal/core"
	"electroworld/pkg/broker"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type AdminHandler struct {
	Orders core.OrderRepository
	Broker *broker.SegmentedBroker
}

// ListOrders returns the most recent orders for the dashboard.
// GET /admin/orders
func (h *AdminHandler) ListOrders(e *pbCore.RequestEvent) error {
	orders, err := h.Orders.FindRecent(50)
	if err != nil {
		log.Printf("❌ [ADMIN] list orders failed: %v", err)
		return e.JSON(500, map[string]string{"error": "Failed to load orders"})
	}
	if orders == nil {
		orders = []*core.Order{}
	}
	return e.JSON(200, orders)
}

// StreamOrders pushes new orders to the admin dashboard over SSE.
// GET /api/admin/orders/stream
func (h *AdminHandler) StreamOrders(e *pbCore.RequestEvent) error {
	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")

	eventChan := h.Broker.Subscribe(broker.ChannelAdmin, "")
	defer h.Broker.Unsubscribe(broker.ChannelAdmin, "", eventChan)

	sendSSEMessage(e, "connected", map[string]interface{}{
		"message":   "Connected to order stream",
		"timestamp": time.Now().Unix(),
	})

	// Heartbeat to keep connection alive every 30 seconds
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return nil
			}
			sendSSEMessage(e, event.Type, event.Data)

		case <-ticker.C:
			sendSSEMessage(e, "heartbeat", map[string]interface{}{
				"timestamp": time.Now().Unix(),
			})

		case <-e.Request.Context().Done():
			return nil
		}
	}
}

// StreamOrderStatus lets a customer follow their own order.
// GET /api/orders/{id}/stream
func (h *AdminHandler) StreamOrderStatus(e *pbCore.RequestEvent) error {
	orderID := e.Request.PathValue("id")
	if orderID == "" {
		return e.JSON(400, map[string]string{"error": "Missing order ID"})
	}

	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")

	eventChan := h.Broker.Subscribe(broker.ChannelCustomer, orderID)
	defer h.Broker.Unsubscribe(broker.ChannelCustomer, orderID, eventChan)

	sendSSEMessage(e, "connected", map[string]interface{}{
		"message":  "Connected to order updates",
		"order_id": orderID,
	})

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return nil
			}
			sendSSEMessage(e, event.Type, event.Data)

		case <-ticker.C:
			sendSSEMessage(e, "heartbeat", map[string]interface{}{
				"timestamp": time.Now().Unix(),
			})

		case <-e.Request.Context().Done():
			return nil
		}
	}
}

// sendSSEMessage sends a single SSE message
func sendSSEMessage(e *pbCore.RequestEvent, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal event data: %v", err)
		return
	}

	message := fmt.Sprintf("event: %s\n", eventType)
	message += fmt.Sprintf("data: %s\n\n", string(jsonData))

	if _, err := e.Response.Write([]byte(message)); err != nil {
		log.Printf("Failed to write SSE message: %v", err)
		return
	}

	if flusher, ok := e.Response.(interface{ Flush() }); ok {
		flusher.Flush()
	}
}
