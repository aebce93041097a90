// Package events menerbitkan event domain order ke RabbitMQ dan menyediakan consumer logger-nya.
package events

import (
	"encoding/json"
	"time"

	"storefront/internal/order"
)

const (
	ExchangeOrders = "orders_exchange"

	RoutingOrderCreated  = "order.created"
	RoutingStatusUpdated = "order.status_updated"

	// Queue logger menerima semua event order.
	QueueOrderLog    = "q.orders.log"
	BindingAllOrders = "order.#"
)

type Envelope struct {
	EventID    string          `json:"event_id"`   // uuid
	EventType  string          `json:"event_type"` // routing key
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	OrderID    string          `json:"order_id"`
	Payload    json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID       string              `json:"order_id"`
	ProductID     string              `json:"product_id"`
	Quantity      int                 `json:"qty"`
	TotalPrice    int64               `json:"total_price"`
	PaymentMethod order.PaymentMethod `json:"payment_method"`
	TrackingLink  string              `json:"tracking_link"`
}

type StatusUpdatedPayload struct {
	OrderID string           `json:"order_id"`
	From    order.StatusPair `json:"from"`
	To      order.StatusPair `json:"to"`
}
